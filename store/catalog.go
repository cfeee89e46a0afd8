package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ppob/client"
)

const (
	msgInvalidToken   = "Token tidak valid atau kadaluwarsa"
	msgServicesFailed = "Gagal memuat daftar layanan"
	msgBannersFailed  = "Gagal memuat banner"
)

// CatalogState holds the payable-service and banner catalogs. Each list is
// replaced wholesale on a successful fetch, never merged.
type CatalogState struct {
	Services          []client.Service
	Banners           []client.Banner
	IsLoadingServices bool
	IsLoadingBanners  bool
	Error             string
}

type CatalogStore struct {
	mu      sync.Mutex
	state   CatalogState
	api     *client.Client
	log     *logrus.Logger
	changed func()
}

func newCatalogStore(api *client.Client, log *logrus.Logger, changed func()) *CatalogStore {
	return &CatalogStore{api: api, log: log, changed: changed}
}

func (s *CatalogStore) State() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	state.Services = append([]client.Service(nil), s.state.Services...)
	state.Banners = append([]client.Banner(nil), s.state.Banners...)
	return state
}

func (s *CatalogStore) update(fn func(*CatalogState)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
	s.changed()
}

func (s *CatalogStore) FetchServices(ctx context.Context) error {
	s.update(func(st *CatalogState) {
		st.IsLoadingServices = true
		st.Error = ""
	})

	services, err := s.api.GetServices(ctx)
	if err != nil {
		msg := errorMessage(err, msgServicesFailed)
		s.update(func(st *CatalogState) {
			st.IsLoadingServices = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *CatalogState) {
		st.IsLoadingServices = false
		st.Services = services
	})
	return nil
}

func (s *CatalogStore) FetchBanners(ctx context.Context) error {
	s.update(func(st *CatalogState) {
		st.IsLoadingBanners = true
		st.Error = ""
	})

	banners, err := s.api.GetBanners(ctx)
	if err != nil {
		msg := errorMessage(err, msgBannersFailed)
		s.update(func(st *CatalogState) {
			st.IsLoadingBanners = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *CatalogState) {
		st.IsLoadingBanners = false
		st.Banners = banners
	})
	return nil
}

// FetchModuleData issues both catalog fetches concurrently and returns when
// both have settled. It never fails itself; each sub-fetch's own error
// handling is authoritative.
func (s *CatalogStore) FetchModuleData(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.FetchServices(ctx); err != nil {
			s.log.WithError(err).Warn("fetch services failed")
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.FetchBanners(ctx); err != nil {
			s.log.WithError(err).Warn("fetch banners failed")
		}
	}()
	wg.Wait()
}

func (s *CatalogStore) ClearError() {
	s.update(func(st *CatalogState) { st.Error = "" })
}

// ClearCatalog drops both lists, e.g. on logout.
func (s *CatalogStore) ClearCatalog() {
	s.update(func(st *CatalogState) {
		st.Services = nil
		st.Banners = nil
		st.Error = ""
	})
}
