package coupon

import (
	"context"
	"fmt"
	"sync"

	"arena-store/internal/model"

	"github.com/rs/zerolog"
)

// validator implements Validator with concurrent coupon file lookups.
type validator struct {
	couponSets   []CouponSet
	discountRate float64
	logger       zerolog.Logger
	// No mutex needed - coupon sets are read-only after initialization
}

// ValidatorConfig holds configuration for the coupon validator.
type ValidatorConfig struct {
	// FilePaths is the list of coupon file paths to load.
	FilePaths []string

	// MinMatchCount is the minimum number of files a code must appear in.
	// Default: 2
	MinMatchCount int

	// DiscountRate is the fraction of the subtotal a valid code takes off.
	// Default: 0.10
	DiscountRate float64
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		FilePaths: []string{
			"data/coupons/couponbase1.gz",
			"data/coupons/couponbase2.gz",
			"data/coupons/couponbase3.gz",
		},
		MinMatchCount: 2,
		DiscountRate:  0.10,
	}
}

// NewValidator creates a new coupon validator.
// It loads all coupon files at initialization time.
func NewValidator(ctx context.Context, config *ValidatorConfig, loader Loader, logger zerolog.Logger) (Validator, error) {
	if config == nil {
		config = DefaultValidatorConfig()
	}

	logger = logger.With().Str("component", "coupon-validator").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Int("min_match_count", config.MinMatchCount).
		Msg("initialising coupon validator")

	discountRate := config.DiscountRate
	if discountRate <= 0 {
		discountRate = 0.10
	}

	v := &validator{
		couponSets:   make([]CouponSet, 0, len(config.FilePaths)),
		discountRate: discountRate,
		logger:       logger,
	}

	// Load all coupon files concurrently
	type loadResult struct {
		index int
		set   CouponSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				set:   set,
				err:   err,
			}
		}(i, filePath)
	}

	// Wait for all loads to complete
	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	// Check for errors and populate coupon sets
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load coupon file")
			return nil, fmt.Errorf("failed to load coupon file %s: %w", config.FilePaths[i], result.err)
		}
		v.couponSets = append(v.couponSets, result.set)
		logger.Info().
			Str("file", config.FilePaths[i]).
			Int("size", result.set.Size()).
			Msg("coupon file loaded")
	}

	totalCoupons := 0
	for _, set := range v.couponSets {
		totalCoupons += set.Size()
	}

	logger.Info().
		Int("total_coupons", totalCoupons).
		Msg("coupon validator initialised successfully")

	return v, nil
}

// Validate checks if a coupon code is valid.
// A valid coupon code must:
// - Be between 8 and 10 characters in length
// - Appear in at least 2 out of 3 coupon files
func (v *validator) Validate(ctx context.Context, code string) error {
	// Validate length first (cheap check)
	if len(code) < 8 || len(code) > 10 {
		v.logger.Debug().
			Str("coupon_code", code).
			Int("length", len(code)).
			Msg("coupon code length invalid")
		return model.ErrInvalidCouponLength
	}

	// Check presence in coupon files concurrently with early termination
	matchCount := v.countMatches(ctx, code)

	if matchCount < 2 {
		v.logger.Debug().
			Str("coupon_code", code).
			Int("match_count", matchCount).
			Msg("coupon code not found in sufficient files")
		return model.ErrInvalidCoupon
	}

	v.logger.Debug().
		Str("coupon_code", code).
		Int("match_count", matchCount).
		Msg("coupon code validated successfully")

	return nil
}

// countMatches counts how many coupon files contain the given coupon code.
// Uses worker pool pattern with early termination when 2 matches are found.
func (v *validator) countMatches(ctx context.Context, code string) int {
	// Use buffered channel to prevent goroutine leaks on early termination
	resultChan := make(chan bool, len(v.couponSets))
	doneChan := make(chan struct{})
	defer close(doneChan)

	// Launch workers for each coupon set
	// Workers will exit early if doneChan is closed
	for _, set := range v.couponSets {
		go func(s CouponSet) {
			// Check if we should exit early
			select {
			case <-doneChan:
				return
			case <-ctx.Done():
				return
			default:
			}

			found := s.Contains(code)

			// Try to send result, but exit if done or context cancelled
			select {
			case resultChan <- found:
			case <-doneChan:
				return
			case <-ctx.Done():
				return
			}
		}(set)
	}

	// Count matches with early termination
	matches := 0
	checked := 0

	for checked < len(v.couponSets) {
		select {
		case found := <-resultChan:
			checked++
			if found {
				matches++
				// Early termination: if we have 2 matches, we're done
				if matches >= 2 {
					return matches
				}
			}
			// Early termination: if we can't possibly get 2 matches, exit
			remaining := len(v.couponSets) - checked
			if matches+remaining < 2 {
				return matches
			}
		case <-ctx.Done():
			return matches
		}
	}

	return matches
}

// Discount validates a coupon code and returns the discount it grants on
// the given subtotal.
func (v *validator) Discount(ctx context.Context, code string, subtotal float64) (float64, error) {
	if err := v.Validate(ctx, code); err != nil {
		return 0, err
	}

	discount := subtotal * v.discountRate

	v.logger.Debug().
		Str("coupon_code", code).
		Float64("subtotal", subtotal).
		Float64("discount", discount).
		Msg("coupon discount applied")

	return discount, nil
}

// Close releases resources held by the validator.
func (v *validator) Close() error {
	// Clear coupon sets to allow GC to reclaim memory
	v.couponSets = nil

	v.logger.Info().Msg("coupon validator closed")

	return nil
}
