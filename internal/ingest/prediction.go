// Package ingest decodes prediction result documents produced by the
// cable temperature service.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/econum/cableviz/internal/chart"
	"github.com/econum/cableviz/internal/energy"
	"github.com/econum/cableviz/internal/logging"
	"github.com/econum/cableviz/internal/units"
)

// Timestamp units accepted in timestamp_unit.
const (
	TimestampUnitMs      = "ms"
	TimestampUnitMinutes = "min"
)

// maxParallelLoads bounds concurrent file reads in LoadFiles.
const maxParallelLoads = 4

// Prediction is one prediction result.
type Prediction struct {
	Temperatures         []float64      `json:"temperatures"`
	Timestamps           []float64      `json:"timestamps"`
	ExecutionTimeSeconds float64        `json:"execution_time_seconds"`
	CodeCarbon           *energy.Record `json:"code_carbon,omitempty"`
	CarbonEmissionsKg    CarbonField    `json:"carbon_emissions_kg"`
	Energy               *EnergySummary `json:"energy,omitempty"`
	Note                 string         `json:"note,omitempty"`
	TimestampUnit        string         `json:"timestamp_unit,omitempty"`

	// Source is the file the prediction was read from, "-" for stdin.
	Source string `json:"-"`
}

// EnergySummary is the coarse energy block some service versions emit.
type EnergySummary struct {
	ConsumptionJoules float64  `json:"consumption_joules"`
	CO2EmissionsGrams *float64 `json:"co2_emissions_grams,omitempty"`
}

// CarbonField holds carbon_emissions_kg, which is either a number or a
// full record. Both are nil when the field is absent or null.
type CarbonField struct {
	Kg     *float64
	Record *energy.Record
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CarbonField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*c = CarbonField{}
		return nil
	case trimmed[0] == '{':
		var r energy.Record
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return fmt.Errorf("carbon_emissions_kg record: %w", err)
		}
		*c = CarbonField{Record: &r}
		return nil
	default:
		var kg float64
		if err := json.Unmarshal(trimmed, &kg); err != nil {
			return fmt.Errorf("carbon_emissions_kg must be a number or an object: %w", ErrInvalidPrediction)
		}
		*c = CarbonField{Kg: &kg}
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (c CarbonField) MarshalJSON() ([]byte, error) {
	switch {
	case c.Record != nil:
		return json.Marshal(c.Record)
	case c.Kg != nil:
		return json.Marshal(*c.Kg)
	default:
		return []byte("null"), nil
	}
}

// EmissionsInput returns the emissions of p, trying in order the
// code_carbon record, a record in carbon_emissions_kg, a number in
// carbon_emissions_kg and energy.co2_emissions_grams. It returns nil when
// none is present. Grams that cannot be normalised resolve to a NaN scalar,
// rendered as N/A like any other invalid mass.
func (p *Prediction) EmissionsInput() energy.Input {
	switch {
	case p.CodeCarbon != nil:
		return energy.Detailed{Record: *p.CodeCarbon}
	case p.CarbonEmissionsKg.Record != nil:
		return energy.Detailed{Record: *p.CarbonEmissionsKg.Record}
	case p.CarbonEmissionsKg.Kg != nil:
		return energy.Scalar(*p.CarbonEmissionsKg.Kg)
	case p.Energy != nil && p.Energy.CO2EmissionsGrams != nil:
		kg, err := units.NormalizeToKg(*p.Energy.CO2EmissionsGrams, "g")
		if err != nil {
			return energy.Scalar(math.NaN())
		}
		return energy.Scalar(kg)
	default:
		return nil
	}
}

// ChartPolicy returns the axis policy implied by timestamp_unit.
func (p *Prediction) ChartPolicy() chart.AxisPolicy {
	if strings.EqualFold(p.TimestampUnit, TimestampUnitMinutes) {
		return chart.PolicyPreLabeledMinutes
	}
	return chart.PolicyMinutesLabel
}

// Validate checks fields the decoder cannot: timestamp_unit.
func (p *Prediction) Validate() error {
	switch strings.ToLower(p.TimestampUnit) {
	case "", TimestampUnitMs, TimestampUnitMinutes:
		return nil
	default:
		return fmt.Errorf("timestamp_unit %q: %w", p.TimestampUnit, ErrInvalidPrediction)
	}
}

// Decode reads one prediction document from r.
func Decode(ctx context.Context, r io.Reader) (*Prediction, error) {
	log := logging.FromContext(ctx)

	var p Prediction
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "decode").
			Err(err).
			Msg("failed to decode prediction")
		return nil, fmt.Errorf("decoding prediction: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "decode").
		Int("temperature_count", len(p.Temperatures)).
		Int("timestamp_count", len(p.Timestamps)).
		Bool("has_emissions", p.EmissionsInput() != nil).
		Msg("prediction decoded")

	return &p, nil
}

// Parse decodes a prediction from data.
func Parse(ctx context.Context, data []byte) (*Prediction, error) {
	return Decode(ctx, bytes.NewReader(data))
}

// LoadFile reads and decodes the prediction at path.
func LoadFile(ctx context.Context, path string) (*Prediction, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_file").
		Str("path", path).
		Msg("loading prediction")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening prediction file: %w", err)
	}
	defer f.Close()

	p, err := Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadFiles loads paths concurrently and returns the predictions in the
// order of paths. The first failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths []string) ([]*Prediction, error) {
	out := make([]*Prediction, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := LoadFile(gctx, path)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
