package convert

import (
	"context"
	"math"
)

// brightness clamps the value to [0,100] and snaps 99 up to 100. Global
// variable dimmers report exact levels and are exempt from the snap.
func (s *Set) brightness(_ context.Context, req Request) error {
	v, ok := req.Properties.Value()
	if !ok {
		return nil
	}
	v = ClampPercent(v)
	if !req.Service.IsGlobalVariableDimmer && v == snapHighRaw {
		v = percentMax
	}
	req.Characteristic.UpdateValue(v)
	return nil
}

// hue writes the rounded hue component of the device's RGBW colour.
func (s *Set) hue(_ context.Context, req Request) error {
	hsv, ok, err := s.colorHSV(req)
	if err != nil || !ok {
		return err
	}
	req.Characteristic.UpdateValue(math.Round(hsv.H))
	return nil
}

// saturation writes the rounded saturation component of the device's RGBW
// colour.
func (s *Set) saturation(_ context.Context, req Request) error {
	hsv, ok, err := s.colorHSV(req)
	if err != nil || !ok {
		return err
	}
	req.Characteristic.UpdateValue(math.Round(hsv.S))
	return nil
}

// colorHSV parses and converts the colour property. An absent colour is a
// silent skip (ok=false); a malformed one is a logged skip.
func (s *Set) colorHSV(req Request) (HSV, bool, error) {
	raw, ok := req.Properties.Color()
	if !ok {
		return HSV{}, false, nil
	}
	r, g, b, w, err := ParseRGBW(raw)
	if err != nil {
		return HSV{}, false, err
	}
	return RGBWToHSV(r, g, b, w), true, nil
}
