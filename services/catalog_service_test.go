package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dog-key/pre-order/configs"
	"github.com/dog-key/pre-order/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(url, key string) *CatalogService {
	return NewCatalogService(&configs.Config{
		CatalogAPIURL:  url,
		CatalogAPIKey:  key,
		CatalogTimeout: 2 * time.Second,
	}, nil, zap.NewNop())
}

func TestCatalog_BadCategory(t *testing.T) {
	svc := newCatalog("", "")

	_, err := svc.Load(context.Background(), "Hyderabad", "Electronics")
	assert.ErrorIs(t, err, ErrBadCategory)
}

func TestCatalog_FallbackWithoutCredential(t *testing.T) {
	svc := newCatalog("http://example.invalid", "")

	list, err := svc.Load(context.Background(), "Hyderabad", "Food")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r1", list[0].ID)

	// cache ใช้ต่อกับ add-to-cart ได้เลย
	r, ok := svc.Restaurant("r1")
	assert.True(t, ok)
	_, ok = r.FindMenuItem("m1")
	assert.True(t, ok)
}

func TestCatalog_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not":"a list"`))
			},
		},
		{
			name: "schema violation everywhere",
			handler: func(w http.ResponseWriter, r *http.Request) {
				// ไม่มี field บังคับสักร้าน → ผลเท่ากับ list ว่าง
				w.Write([]byte(`[{"name":"No ID"},{"id":"x","cuisine":"y"}]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			svc := newCatalog(srv.URL, "test-key")
			list, err := svc.Load(context.Background(), "Hyderabad", "Food")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "Spice of Hyderabad", list[0].Name)
		})
	}
}

func TestCatalog_RemoteList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Cafe", r.URL.Query().Get("category"))
		w.Write([]byte(`[
			{"id":"c1","name":"Corner Cafe","cuisine":"Coffee","rating":4.2,
			 "menu":[{"id":"k1","name":"Latte","price":120,"isVeg":true}]}
		]`))
	}))
	defer srv.Close()

	svc := newCatalog(srv.URL, "test-key")
	list, err := svc.Load(context.Background(), "Mumbai", "Cafe")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
	// optional field ที่หายมาเป็น zero เฉย ๆ ไม่พัง
	assert.Equal(t, "", list[0].Distance)
	assert.Equal(t, "", list[0].Address)
}

func TestMapRestaurants(t *testing.T) {
	raw := []byte(`[
		{"id":"a","name":"Keep Me","cuisine":"Thai","distance":"1 km",
		 "menu":[
			{"id":"p1","name":"Pad Thai","price":90,"isVeg":false},
			{"id":"","name":"No ID","price":10},
			{"id":"p2","name":"Negative","price":-5}
		 ]},
		{"id":"b","name":"No Cuisine",
		 "menu":[{"id":"x","name":"X","price":1}]},
		{"id":"c","name":"Empty Menu","cuisine":"Thai","menu":[]}
	]`)

	list, err := mapRestaurants(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
	// เมนูที่ขาด field บังคับ/ราคาติดลบโดนทิ้ง
	require.Len(t, list[0].Menu, 1)
	assert.Equal(t, "p1", list[0].Menu[0].ID)
}

func TestCatalog_LastRequestWins(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("category") {
		case "Food": // request แรก ช้า
			close(slowStarted)
			<-release
			w.Write([]byte(`[{"id":"stale-1","name":"Stale","cuisine":"Old",
				"menu":[{"id":"s1","name":"S","price":1}]}]`))
		default: // request ที่สอง เร็ว
			w.Write([]byte(`[{"id":"fresh-1","name":"Fresh","cuisine":"New",
				"menu":[{"id":"f1","name":"F","price":1}]}]`))
		}
	}))
	defer srv.Close()

	svc := newCatalog(srv.URL, "test-key")

	done := make(chan []entity.Restaurant)
	go func() {
		list, err := svc.Load(context.Background(), "Hyderabad", "Food")
		assert.NoError(t, err)
		done <- list
	}()

	<-slowStarted
	// request ใหม่แทรกเข้ามาก่อนอันเก่าตอบ
	fresh, err := svc.Load(context.Background(), "Hyderabad", "Cafe")
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "fresh-1", fresh[0].ID)

	close(release)
	stale := <-done
	// caller เดิมยังได้ผลของตัวเอง แต่ cache ต้องไม่โดนทับด้วยของเก่า
	require.Len(t, stale, 1)
	assert.Equal(t, "stale-1", stale[0].ID)

	_, ok := svc.Restaurant("stale-1")
	assert.False(t, ok)
	_, ok = svc.Restaurant("fresh-1")
	assert.True(t, ok)
}
