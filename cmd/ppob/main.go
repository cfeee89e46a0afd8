// Command ppob is an interactive terminal client for the PPOB API. It
// drives the composed state store the same way the web UI does: issue an
// operation, then render the store's state.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ppob/client"
	"ppob/session"
	"ppob/store"
)

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:3000"
	}
	tokenFile := os.Getenv("PPOB_TOKEN_FILE")
	if tokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("resolve home dir: %v", err)
		}
		tokenFile = filepath.Join(home, ".ppob", "token")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	sess := session.New(session.NewFileStorage(tokenFile))
	api, err := client.New(client.Config{
		BaseURL: baseURL,
		Tokens:  sess,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("create client: %v", err)
	}

	st := store.New(store.Config{Client: api, Session: sess, Logger: logger})
	defer st.Close()

	ui := &ui{store: st, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	ui.run()
}

type ui struct {
	store *store.Store
	in    *bufio.Reader
	out   *os.File
}

func (u *ui) run() {
	if err := u.store.Auth.CheckAuth(u.ctx()); err == nil {
		auth := u.store.Auth.State()
		fmt.Fprintf(u.out, "Selamat datang kembali, %s %s\n", auth.User.FirstName, auth.User.LastName)
	}

	for {
		auth := u.store.Auth.State()
		if !auth.IsAuthenticated {
			if !u.guestMenu() {
				return
			}
			continue
		}
		if !u.memberMenu() {
			return
		}
	}
}

func (u *ui) guestMenu() bool {
	fmt.Fprintln(u.out, "\n=== SIMS PPOB ===")
	fmt.Fprintln(u.out, "1) Login")
	fmt.Fprintln(u.out, "2) Registrasi")
	fmt.Fprintln(u.out, "0) Keluar")
	fmt.Fprint(u.out, "> ")

	switch u.readLine() {
	case "1":
		email := u.prompt("Email: ")
		password := u.prompt("Password: ")
		if err := u.store.Auth.Login(u.ctx(), email, password); err != nil {
			u.printAuthMessages()
			return true
		}
		auth := u.store.Auth.State()
		fmt.Fprintf(u.out, "Login berhasil. Halo, %s %s\n", auth.User.FirstName, auth.User.LastName)
	case "2":
		req := client.RegisterRequest{
			Email:     u.prompt("Email: "),
			FirstName: u.prompt("Nama depan: "),
			LastName:  u.prompt("Nama belakang: "),
			Password:  u.prompt("Password: "),
		}
		_ = u.store.Auth.Register(u.ctx(), req)
		u.printAuthMessages()
	case "0":
		return false
	}
	return true
}

func (u *ui) memberMenu() bool {
	fmt.Fprintln(u.out, "\n=== SIMS PPOB ===")
	fmt.Fprintln(u.out, "1) Saldo")
	fmt.Fprintln(u.out, "2) Daftar layanan")
	fmt.Fprintln(u.out, "3) Banner promo")
	fmt.Fprintln(u.out, "4) Top up")
	fmt.Fprintln(u.out, "5) Bayar layanan")
	fmt.Fprintln(u.out, "6) Riwayat transaksi")
	fmt.Fprintln(u.out, "7) Profil")
	fmt.Fprintln(u.out, "8) Update profil")
	fmt.Fprintln(u.out, "9) Logout")
	fmt.Fprintln(u.out, "0) Keluar")
	fmt.Fprint(u.out, "> ")

	switch u.readLine() {
	case "1":
		u.showBalance()
	case "2":
		u.showServices()
	case "3":
		u.showBanners()
	case "4":
		u.topUp()
	case "5":
		u.pay()
	case "6":
		u.history()
	case "7":
		u.showProfile()
	case "8":
		u.updateProfile()
	case "9":
		u.store.Auth.Logout()
		u.store.Catalog.ClearCatalog()
		u.store.Transaction.ResetTransactions()
		fmt.Fprintln(u.out, "Logout berhasil.")
	case "0":
		return false
	}
	return true
}

func (u *ui) showBalance() {
	if err := u.store.Transaction.FetchBalance(u.ctx()); err != nil {
		u.printTransactionMessages()
		return
	}
	state := u.store.Transaction.State()
	if state.Balance != nil {
		fmt.Fprintf(u.out, "Saldo: Rp %d\n", *state.Balance)
	}
}

func (u *ui) showServices() {
	if err := u.store.Catalog.FetchServices(u.ctx()); err != nil {
		fmt.Fprintln(u.out, u.store.Catalog.State().Error)
		return
	}
	for _, svc := range u.store.Catalog.State().Services {
		fmt.Fprintf(u.out, "%-16s %-24s Rp %d\n", svc.ServiceCode, svc.ServiceName, svc.ServiceTariff)
	}
}

func (u *ui) showBanners() {
	if err := u.store.Catalog.FetchBanners(u.ctx()); err != nil {
		fmt.Fprintln(u.out, u.store.Catalog.State().Error)
		return
	}
	for _, banner := range u.store.Catalog.State().Banners {
		fmt.Fprintf(u.out, "%s — %s\n", banner.BannerName, banner.Description)
	}
}

func (u *ui) topUp() {
	amount, err := strconv.ParseInt(u.prompt("Nominal top up: "), 10, 64)
	if err != nil || amount <= 0 {
		fmt.Fprintln(u.out, "Nominal tidak valid.")
		return
	}
	if err := u.store.Transaction.TopUpBalance(u.ctx(), amount); err != nil {
		u.printTransactionMessages()
		return
	}
	state := u.store.Transaction.State()
	fmt.Fprintln(u.out, state.SuccessMessage)
	if state.TopUpResult != nil {
		fmt.Fprintf(u.out, "Saldo sekarang: Rp %d\n", state.TopUpResult.Balance)
	}
}

func (u *ui) pay() {
	code := strings.ToUpper(u.prompt("Kode layanan: "))
	if err := u.store.Transaction.CreateTransaction(u.ctx(), code); err != nil {
		u.printTransactionMessages()
		return
	}
	state := u.store.Transaction.State()
	fmt.Fprintln(u.out, state.SuccessMessage)
	if trx := state.CurrentTransaction; trx != nil {
		fmt.Fprintf(u.out, "Invoice %s: %s Rp %d\n", trx.InvoiceNumber, trx.ServiceName, trx.TotalAmount)
	}
}

func (u *ui) history() {
	u.store.Transaction.ResetTransactions()
	if err := u.store.Transaction.FetchTransactionHistory(u.ctx(), 0, store.DefaultPageLimit); err != nil {
		u.printTransactionMessages()
		return
	}
	for {
		state := u.store.Transaction.State()
		for _, trx := range state.Transactions {
			fmt.Fprintf(u.out, "%-20s %-8s Rp %-10d %s\n",
				trx.InvoiceNumber, trx.TransactionType, trx.TotalAmount, trx.CreatedOn)
		}
		if !state.HasMore {
			return
		}
		if strings.ToLower(u.prompt("Muat lagi? (y/n): ")) != "y" {
			return
		}
		if err := u.store.Transaction.NextPage(u.ctx()); err != nil {
			u.printTransactionMessages()
			return
		}
	}
}

func (u *ui) showProfile() {
	auth := u.store.Auth.State()
	if auth.User == nil {
		return
	}
	fmt.Fprintf(u.out, "%s %s <%s>\n", auth.User.FirstName, auth.User.LastName, auth.User.Email)
}

func (u *ui) updateProfile() {
	first := u.prompt("Nama depan: ")
	last := u.prompt("Nama belakang: ")
	_ = u.store.Auth.UpdateProfile(u.ctx(), first, last)
	u.printAuthMessages()
}

func (u *ui) printAuthMessages() {
	auth := u.store.Auth.State()
	if auth.Error != "" {
		fmt.Fprintln(u.out, auth.Error)
	}
	if auth.SuccessMessage != "" {
		fmt.Fprintln(u.out, auth.SuccessMessage)
	}
}

func (u *ui) printTransactionMessages() {
	state := u.store.Transaction.State()
	if state.Error != "" {
		fmt.Fprintln(u.out, state.Error)
	}
}

func (u *ui) prompt(label string) string {
	fmt.Fprint(u.out, label)
	return u.readLine()
}

func (u *ui) readLine() string {
	line, _ := u.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// The HTTP client already enforces a 30s timeout per call.
func (u *ui) ctx() context.Context {
	return context.Background()
}
