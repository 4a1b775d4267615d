package scoring

import (
	"testing"

	"lapmatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMatchLaptop() *entity.Laptop {
	return &entity.Laptop{
		Name:     "ZenBook Pro",
		Brand:    entity.BrandAsus,
		Category: entity.CategoryUltrabook,
		Price:    entity.Price{Current: 1499, Original: 1699, Currency: "EUR"},
		Specifications: entity.Specifications{
			RAM:         16,
			Processor:   "Intel Core i7-1360P",
			Weight:      1.4,
			RefreshRate: 120,
		},
		Features: entity.Features{Touchscreen: true},
	}
}

func interestedProfile() *entity.PreferenceProfile {
	return &entity.PreferenceProfile{
		Budget:      entity.BudgetPreference{Min: 1000, Max: 2000, Currency: "EUR"},
		Performance: entity.PerformancePreference{Importance: 8},
		Portability: entity.PortabilityPreference{Importance: 8, MaxWeight: 1.8},
		Display:     entity.DisplayPreference{Importance: 8, Touchscreen: true, HighRefreshRate: true},
	}
}

func TestScore_FullMatch(t *testing.T) {
	score, reasons := Score(fullMatchLaptop(), interestedProfile())

	require.InDelta(t, 1.0, score, 1e-9)
	assert.Contains(t, reasons, "Fits your budget range")
	assert.Contains(t, reasons, "Lightweight and portable")
	assert.Contains(t, reasons, "High performance for demanding tasks")
	assert.Contains(t, reasons, "Includes touchscreen as preferred")
}

func TestScore_RenormalizesOverExpressedDimensions(t *testing.T) {
	// Only budget and performance are expressed, so the denominator is
	// their combined weight rather than the full 1.0.
	laptop := fullMatchLaptop()
	laptop.Specifications.RAM = 8
	laptop.Specifications.Processor = "Intel Celeron N4500"

	profile := interestedProfile()
	profile.Portability.Importance = 2
	profile.Display.Importance = 2

	score, _ := Score(laptop, profile)

	// budget 1.0*0.4 + performance (0.4+0.2)*0.3, over weight 0.7.
	require.InDelta(t, (0.4+0.18)/0.7, score, 1e-9)
}

func TestScore_BudgetOverrunDilutesScore(t *testing.T) {
	laptop := &entity.Laptop{
		Name:     "Inspiron 14",
		Brand:    entity.BrandDell,
		Category: entity.CategoryUltrabook,
		Price:    entity.Price{Current: 1200, Currency: "EUR"},
		Specifications: entity.Specifications{
			RAM:       16,
			Processor: "Intel Core i7-1355U",
			Weight:    1.6,
		},
	}
	profile := &entity.PreferenceProfile{
		Budget:      entity.BudgetPreference{Min: 500, Max: 1500, Currency: "EUR"},
		Performance: entity.PerformancePreference{Importance: 8},
		Portability: entity.PortabilityPreference{Importance: 3},
	}

	score, _ := Score(laptop, profile)
	require.InDelta(t, 1.0, score, 1e-9)

	// Pricing past the tolerated overrun drops the budget sub-score to 0.3
	// while the performance dimension stays perfect.
	laptop.Price.Current = 2000
	score, _ = Score(laptop, profile)
	require.InDelta(t, (0.4*0.3+0.3*1.0)/0.7, score, 1e-9)
}

func TestScore_BudgetOnlyProfile(t *testing.T) {
	profile := interestedProfile()
	profile.Performance.Importance = 1
	profile.Portability.Importance = 1
	profile.Display.Importance = 1

	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"within band", 1500, 1.0},
		{"at exactly the budget max", 2000, 1.0},
		{"under budget", 500, 0.8},
		{"at exactly 1.2x ceiling", 2400, 0.6},
		{"beyond 1.2x ceiling", 2400.01, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			laptop := fullMatchLaptop()
			laptop.Price.Current = tt.price

			score, _ := Score(laptop, profile)
			require.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestScore_PortabilityBands(t *testing.T) {
	profile := interestedProfile()
	profile.Performance.Importance = 1
	profile.Display.Importance = 1
	profile.Portability.MaxWeight = 2.0

	tests := []struct {
		name      string
		weight    float64
		wantScore float64
	}{
		{"at ceiling", 2.0, 1.0},
		{"within 1.2x", 2.3, 0.7},
		{"within 1.5x", 2.9, 0.4},
		{"heavier", 3.5, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			laptop := fullMatchLaptop()
			laptop.Specifications.Weight = tt.weight

			score, _ := Score(laptop, profile)

			// budget in-band contributes 0.4, portability 0.2, weight 0.6.
			require.InDelta(t, (0.4+tt.wantScore*0.2)/0.6, score, 1e-9)
		})
	}
}

func TestScore_DisplayWishes(t *testing.T) {
	profile := interestedProfile()
	profile.Performance.Importance = 1
	profile.Portability.Importance = 1

	laptop := fullMatchLaptop()
	laptop.Features.Touchscreen = false
	laptop.Specifications.RefreshRate = 0

	score, _ := Score(laptop, profile)

	// Neither display wish is met, the base display score of 0.5 remains.
	require.InDelta(t, (0.4+0.5*0.1)/0.5, score, 1e-9)

	// An omitted refresh rate never satisfies the high-refresh wish.
	laptop.Specifications.RefreshRate = 60
	again, _ := Score(laptop, profile)
	assert.InDelta(t, score, again, 1e-9)
}

func TestScore_ProcessorTiers(t *testing.T) {
	tests := []struct {
		processor string
		want      float64
	}{
		{"Intel Core i7-13700H", 0.4},
		{"AMD Ryzen 7 7840U", 0.4},
		{"Intel Core i5-1335U", 0.3},
		{"AMD Ryzen 5 7530U", 0.3},
		{"Intel Celeron N4500", 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.processor, func(t *testing.T) {
			assert.InDelta(t, tt.want, processorTier(tt.processor), 1e-9)
		})
	}
}

func TestReasons_ThresholdsAreStricterThanInterest(t *testing.T) {
	laptop := fullMatchLaptop()
	laptop.Features.Touchscreen = false

	profile := interestedProfile()
	profile.Display.Touchscreen = false
	profile.Performance.Importance = 6
	profile.Portability.Importance = 6

	reasons := Reasons(laptop, profile)

	// Importance 6 is enough to score a dimension but not to explain it.
	assert.Equal(t, []string{"Fits your budget range"}, reasons)

	profile.Performance.Importance = 7
	profile.Portability.Importance = 7

	reasons = Reasons(laptop, profile)
	assert.Contains(t, reasons, "Lightweight and portable")
	assert.Contains(t, reasons, "High performance for demanding tasks")
}

func TestReasons_NoMatchYieldsEmpty(t *testing.T) {
	laptop := fullMatchLaptop()
	laptop.Price.Current = 5000
	laptop.Features.Touchscreen = false
	laptop.Specifications.RAM = 8
	laptop.Specifications.Weight = 3.0

	profile := interestedProfile()
	profile.Performance.Importance = 10
	profile.Portability.Importance = 10
	profile.Display.Touchscreen = false

	assert.Empty(t, Reasons(laptop, profile))
}
