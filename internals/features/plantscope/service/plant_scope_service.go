package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"skillmatrix_backend/internals/constants"
	"skillmatrix_backend/internals/helpers/kvcache"
)

// PlantScope: hasil resolusi tenant untuk satu karyawan.
// PlantCode selalu terisi (> 0) — resolver tidak pernah gagal total.
type PlantScope struct {
	PlantCode     int     `json:"plant_code"`
	Location      *string `json:"location"`
	UsingFallback bool    `json:"using_fallback"`
}

// ScopeClient mengambil plant code dari scope service eksternal.
type ScopeClient interface {
	FetchPlantCode(ctx context.Context, personnelNo string) (int, error)
}

/* ===============================
   HTTP client (fiber Agent)
=================================*/

type HTTPScopeClient struct {
	URL string
}

type scopePayload struct {
	PlantCode any    `json:"plant_code"`
	Error     string `json:"error"`
}

// FetchPlantCode memanggil scope service; payload sukses `{"plant_code": 2021}`,
// payload gagal `{"error": "..."}`. plant_code bisa datang sebagai angka atau string.
func (cl *HTTPScopeClient) FetchPlantCode(ctx context.Context, personnelNo string) (int, error) {
	agent := fiber.Get(cl.URL)
	agent.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if personnelNo != "" {
		agent.Set("X-Personnel-No", personnelNo)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("scope service unreachable: %w", errs[0])
	}
	if status != fiber.StatusOK {
		return 0, fmt.Errorf("scope service returned status %d", status)
	}

	var payload scopePayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("scope service payload invalid: %w", err)
	}
	if payload.Error != "" {
		return 0, fmt.Errorf("scope service error: %s", payload.Error)
	}

	code, err := coercePlantCode(payload.PlantCode)
	if err != nil {
		return 0, err
	}
	return code, nil
}

func coercePlantCode(v any) (int, error) {
	switch x := v.(type) {
	case float64:
		if x <= 0 {
			return 0, fmt.Errorf("plant code %v is not positive", x)
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("plant code %q is not a positive number", x)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("plant code not found in response")
	default:
		return 0, fmt.Errorf("plant code has unexpected type %T", v)
	}
}

/* ===============================
   Resolver
=================================*/

// Resolver: scope service + write-through cache + fallback.
type Resolver struct {
	Client ScopeClient
	Cache  kvcache.Store
}

func NewResolver(client ScopeClient, cache kvcache.Store) *Resolver {
	return &Resolver{Client: client, Cache: cache}
}

func cacheKeyCode(personnelNo string) string     { return "plant_code:" + personnelNo }
func cacheKeyLocation(personnelNo string) string { return "plant_location:" + personnelNo }

// Resolve mengembalikan scope yang SELALU bisa dipakai:
//  1. sukses → derive lokasi, write-through ke cache, UsingFallback=false;
//  2. gagal  → pakai nilai cache terakhir, atau default plant 2021.
//
// Kegagalan network/parse tidak pernah dianggap fatal di sini.
func (r *Resolver) Resolve(ctx context.Context, personnelNo string) PlantScope {
	code, err := r.Client.FetchPlantCode(ctx, personnelNo)
	if err == nil {
		scope := PlantScope{PlantCode: code, Location: locationPtr(code)}

		// write-through; gagal nulis cache cuma dicatat, scope tetap valid
		if cErr := r.Cache.Set(ctx, cacheKeyCode(personnelNo), strconv.Itoa(code)); cErr != nil {
			log.Printf("⚠️ plant scope cache write failed: %v", cErr)
		}
		if scope.Location != nil {
			if cErr := r.Cache.Set(ctx, cacheKeyLocation(personnelNo), *scope.Location); cErr != nil {
				log.Printf("⚠️ plant location cache write failed: %v", cErr)
			}
		}
		return scope
	}

	log.Printf("⚠️ plant scope fetch failed (%v), using fallback", err)

	fallbackCode := constants.DefaultPlantCode
	if cached, cErr := r.Cache.Get(ctx, cacheKeyCode(personnelNo)); cErr == nil {
		if n, pErr := strconv.Atoi(cached); pErr == nil && n > 0 {
			fallbackCode = n
		}
	}

	scope := PlantScope{PlantCode: fallbackCode, UsingFallback: true}
	if cached, cErr := r.Cache.Get(ctx, cacheKeyLocation(personnelNo)); cErr == nil && cached != "" {
		loc := cached
		scope.Location = &loc
	} else {
		scope.Location = locationPtr(fallbackCode)
	}
	return scope
}

func locationPtr(plantCode int) *string {
	if loc := constants.LocationForPlantCode(plantCode); loc != "" {
		return &loc
	}
	return nil
}
