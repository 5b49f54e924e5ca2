package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newPincodeTestEnv(t *testing.T, name string, pincodes []string) *PincodeService {
	t.Helper()

	dsn := fmt.Sprintf("file:pincode_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AppConfig{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	configSvc := NewConfigService(repository.NewConfigRepository(db))
	if pincodes != nil {
		if _, err := configSvc.Set(ConfigSetInput{
			Key:   constants.ConfigKeyAllowedPincodes,
			Value: ConfigValue{Kind: constants.ConfigValueKindStringList, Value: pincodes},
		}); err != nil {
			t.Fatalf("seed pincodes failed: %v", err)
		}
	}
	return NewPincodeService(configSvc, config.DeliveryConfig{EstimatedMinutes: 10})
}

func TestCheckPincodeServiceable(t *testing.T) {
	svc := newPincodeTestEnv(t, "serviceable", []string{"560001", "560002", "560034"})

	result, err := svc.Check("560001")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !result.Serviceable {
		t.Fatalf("expected serviceable pincode")
	}
	if result.Message != "Great! We deliver to your area in 10 minutes" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.EstimatedDelivery == nil || *result.EstimatedDelivery != 10 {
		t.Fatalf("expected estimated delivery 10, got %v", result.EstimatedDelivery)
	}
}

func TestCheckPincodeNotServiceable(t *testing.T) {
	svc := newPincodeTestEnv(t, "outside", []string{"560001"})

	result, err := svc.Check("110001")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if result.Serviceable {
		t.Fatalf("expected non-serviceable pincode")
	}
	if result.Message != "Sorry, we don't deliver to this pincode yet" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.EstimatedDelivery != nil {
		t.Fatalf("expected nil estimated delivery, got %v", *result.EstimatedDelivery)
	}
}

func TestCheckPincodeTrimsWhitespace(t *testing.T) {
	svc := newPincodeTestEnv(t, "trim", []string{"560001"})

	result, err := svc.Check("  560001  ")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !result.Serviceable {
		t.Fatalf("expected trimmed pincode to match")
	}
}

func TestCheckPincodeRejectsBlankInput(t *testing.T) {
	svc := newPincodeTestEnv(t, "blank", []string{"560001"})

	for _, raw := range []string{"", "   "} {
		if _, err := svc.Check(raw); err != ErrInvalidPincode {
			t.Fatalf("expected ErrInvalidPincode for %q, got %v", raw, err)
		}
	}
}

func TestCheckPincodeTreatsMalformedAsNotServiceable(t *testing.T) {
	svc := newPincodeTestEnv(t, "malformed", []string{"560001"})

	for _, raw := range []string{"123", "12345", "1234567", "56000a", "56 001"} {
		result, err := svc.Check(raw)
		if err != nil {
			t.Fatalf("check %q failed: %v", raw, err)
		}
		if result.Serviceable {
			t.Fatalf("expected %q to be non-serviceable", raw)
		}
		if result.EstimatedDelivery != nil {
			t.Fatalf("expected nil estimated delivery for %q", raw)
		}
	}
}

func TestCheckPincodeWithNoConfiguredArea(t *testing.T) {
	svc := newPincodeTestEnv(t, "empty", nil)

	result, err := svc.Check("560001")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if result.Serviceable {
		t.Fatalf("expected non-serviceable when no area configured")
	}
}
