package domain

import (
	"math"
	"testing"
)

func TestNutrientProfileValue(t *testing.T) {
	profile := NutrientProfile{KeySugars: 12.5, KeyFiber: 0}

	t.Run("present value", func(t *testing.T) {
		v, ok := profile.Value(KeySugars)
		if !ok || v != 12.5 {
			t.Errorf("Value = (%v, %v), want (12.5, true)", v, ok)
		}
	})

	t.Run("reported zero is present", func(t *testing.T) {
		v, ok := profile.Value(KeyFiber)
		if !ok || v != 0 {
			t.Errorf("Value = (%v, %v), want (0, true)", v, ok)
		}
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := profile.Value(KeyProteins)
		if ok {
			t.Error("absent key should report not present")
		}
	})
}

func TestSodiumDerivation(t *testing.T) {
	t.Run("direct sodium wins", func(t *testing.T) {
		p := NutrientProfile{KeySodium: 0.4, KeySalt: 5}
		v, ok := p.Sodium()
		if !ok || v != 0.4 {
			t.Errorf("Sodium = (%v, %v), want (0.4, true)", v, ok)
		}
	})

	t.Run("derived from salt", func(t *testing.T) {
		p := NutrientProfile{KeySalt: 2.5}
		v, ok := p.Sodium()
		if !ok || v != 1 {
			t.Errorf("Sodium = (%v, %v), want (1, true)", v, ok)
		}
	})

	t.Run("neither reported", func(t *testing.T) {
		if _, ok := (NutrientProfile{}).Sodium(); ok {
			t.Error("Sodium should report absent")
		}
	})
}

func TestCaloriesDerivation(t *testing.T) {
	t.Run("direct kcal wins", func(t *testing.T) {
		p := NutrientProfile{KeyEnergyKcal: 90, KeyEnergyKJ: 9999}
		v, ok := p.Calories()
		if !ok || v != 90 {
			t.Errorf("Calories = (%v, %v), want (90, true)", v, ok)
		}
	})

	t.Run("derived from kJ", func(t *testing.T) {
		p := NutrientProfile{KeyEnergyKJ: 418.4}
		v, ok := p.Calories()
		if !ok || math.Abs(v-100) > 0.01 {
			t.Errorf("Calories = (%v, %v), want (~100, true)", v, ok)
		}
	})
}
