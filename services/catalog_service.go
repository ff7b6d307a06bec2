package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dog-key/pre-order/configs"
	"github.com/dog-key/pre-order/entity"
	"go.uber.org/zap"
)

var ErrBadCategory = errors.New("unknown category")

// หมวดที่ provider รองรับ
var catalogCategories = map[string]bool{
	"Food":      true,
	"Groceries": true,
	"Pharmacy":  true,
	"Cafe":      true,
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CatalogSource ให้ CartService ตรวจเมนูกับร้านที่ fetch มาแล้ว
type CatalogSource interface {
	Restaurant(id string) (entity.Restaurant, bool)
}

// CatalogService คุย provider ภายนอก (หรือ fallback) แล้ว cache ผลล่าสุดไว้
type CatalogService struct {
	client  HTTPClient
	apiURL  string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger

	mu          sync.RWMutex
	restaurants []entity.Restaurant
	gen         uint64 // generation ล่าสุดที่ยิงออกไป
	applied     uint64 // generation ของ cache ปัจจุบัน
}

func NewCatalogService(cfg *configs.Config, client HTTPClient, logger *zap.Logger) *CatalogService {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		client:  client,
		apiURL:  cfg.CatalogAPIURL,
		apiKey:  cfg.CatalogAPIKey,
		timeout: cfg.CatalogTimeout,
		logger:  logger,
	}
}

// Load ดึงร้านตาม location/category — ไม่มีวัน error ยกเว้น category ผิด
// fetch พัง/ข้อมูลเพี้ยน/ไม่มี key → ใช้ fallback list เสมอ
// ถ้ามี request ใหม่แทรกเข้ามาก่อนอันนี้เสร็จ ผลอันนี้จะไม่ทับ cache (last request wins)
func (s *CatalogService) Load(ctx context.Context, location, category string) ([]entity.Restaurant, error) {
	if category == "" {
		category = "Food"
	}
	if !catalogCategories[category] {
		return nil, ErrBadCategory
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	list := s.fetch(ctx, location, category)

	s.mu.Lock()
	if gen >= s.applied {
		s.applied = gen
		s.restaurants = list
	} else {
		s.logger.Debug("discarding stale catalog response",
			zap.Uint64("generation", gen), zap.Uint64("applied", s.applied))
	}
	s.mu.Unlock()

	return list, nil
}

// Restaurant หาใน cache ล่าสุด (ที่ user เพิ่งเห็นบนจอ)
func (s *CatalogService) Restaurant(id string) (entity.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Restaurant{}, false
}

func (s *CatalogService) fetch(ctx context.Context, location, category string) []entity.Restaurant {
	if s.apiKey == "" || s.apiURL == "" {
		s.logger.Warn("no catalog credential, using fallback data")
		return FallbackRestaurants()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("location", location)
	q.Set("category", category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		s.logger.Error("catalog request build failed", zap.Error(err))
		return FallbackRestaurants()
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("catalog fetch failed, using fallback data", zap.Error(err))
		return FallbackRestaurants()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("catalog fetch bad status, using fallback data",
			zap.Int("status", resp.StatusCode))
		return FallbackRestaurants()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Warn("catalog read failed, using fallback data", zap.Error(err))
		return FallbackRestaurants()
	}

	list, err := mapRestaurants(body)
	if err != nil || len(list) == 0 {
		s.logger.Warn("catalog payload invalid, using fallback data", zap.Error(err))
		return FallbackRestaurants()
	}
	return list
}

// mapRestaurants เป็น boundary เดียวที่ข้อมูลดิบจากข้างนอกผ่านเข้าระบบ
// field บังคับ: restaurant {id,name,cuisine,menu} / menu item {id,name,price}
// record ที่ขาดของบังคับหรือราคาติดลบถูกทิ้ง, optional ที่หายได้ค่า zero
func mapRestaurants(raw []byte) ([]entity.Restaurant, error) {
	var payload []entity.Restaurant
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	out := make([]entity.Restaurant, 0, len(payload))
	for _, r := range payload {
		if r.ID == "" || r.Name == "" || r.Cuisine == "" {
			continue
		}
		menu := make([]entity.MenuItem, 0, len(r.Menu))
		for _, m := range r.Menu {
			if m.ID == "" || m.Name == "" || m.Price < 0 {
				continue
			}
			menu = append(menu, m)
		}
		if len(menu) == 0 {
			continue
		}
		r.Menu = menu
		out = append(out, r)
	}
	return out, nil
}
