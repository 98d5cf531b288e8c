package delivery

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Policy names accepted by FromConfig.
const (
	KindPercentage = "percentage"
	KindDistance   = "distance"
	KindFlat       = "flat"
)

// Config selects and parameterises a delivery policy. Money values are
// decimal strings so they survive env and YAML loading without float
// conversion.
type Config struct {
	Policy        string `default:"percentage" usage:"Delivery policy: percentage, distance or flat"`
	FreeThreshold string `default:"50.00" usage:"Subtotal at or above which delivery is free (percentage, flat)" flag:"delivery-free-threshold"`
	Rate          string `default:"10" usage:"Delivery charge as a percentage of the subtotal (percentage)" flag:"delivery-rate"`
	FlatFee       string `default:"5.00" usage:"Flat delivery fee (flat)" flag:"delivery-flat-fee"`
	FreeMiles     int    `default:"25" usage:"Distance up to which delivery is free (distance)"`
	BaseMiles     int    `default:"100" usage:"Distance covered by the base fee (distance)"`
	BaseFee       string `default:"50" usage:"Fee for distances above the free range (distance)"`
	BlockMiles    int    `default:"50" usage:"Size of each additional distance block (distance)"`
	BlockFee      string `default:"10" usage:"Fee added per complete block beyond the base range (distance)"`
}

// FromConfig builds the configured Policy.
func FromConfig(cfg Config) (Policy, error) {
	switch cfg.Policy {
	case KindPercentage, "":
		threshold, err := parseMoney("free threshold", cfg.FreeThreshold)
		if err != nil {
			return nil, err
		}
		rate, err := parseMoney("rate", cfg.Rate)
		if err != nil {
			return nil, err
		}
		return Percentage{FreeThreshold: threshold, Rate: rate}, nil
	case KindDistance:
		if cfg.FreeMiles < 0 || cfg.BaseMiles < cfg.FreeMiles || cfg.BlockMiles <= 0 {
			return nil, fmt.Errorf("invalid distance tiers: free=%d base=%d block=%d",
				cfg.FreeMiles, cfg.BaseMiles, cfg.BlockMiles)
		}
		baseFee, err := parseMoney("base fee", cfg.BaseFee)
		if err != nil {
			return nil, err
		}
		blockFee, err := parseMoney("block fee", cfg.BlockFee)
		if err != nil {
			return nil, err
		}
		return Distance{
			FreeMiles:  cfg.FreeMiles,
			BaseMiles:  cfg.BaseMiles,
			BaseFee:    baseFee,
			BlockMiles: cfg.BlockMiles,
			BlockFee:   blockFee,
		}, nil
	case KindFlat:
		fee, err := parseMoney("flat fee", cfg.FlatFee)
		if err != nil {
			return nil, err
		}
		threshold := decimal.Zero
		if cfg.FreeThreshold != "" {
			if threshold, err = parseMoney("free threshold", cfg.FreeThreshold); err != nil {
				return nil, err
			}
		}
		return Flat{Amount: fee, FreeThreshold: threshold}, nil
	default:
		return nil, fmt.Errorf("unknown delivery policy %q", cfg.Policy)
	}
}

func parseMoney(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", name, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}
