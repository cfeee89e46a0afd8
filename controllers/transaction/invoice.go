package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newInvoiceNumber builds an INV<ddMMyyyy>-<ref> number with a uuid-derived
// reference, unique enough for the sandbox's uniqueIndex.
func newInvoiceNumber() string {
	ref := strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
	return fmt.Sprintf("INV%s-%s", time.Now().Format("02012006"), ref)
}
