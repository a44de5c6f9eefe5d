package astro

import (
	"errors"
	"math"
	"testing"
)

func TestHeliocentricLongitude_UnknownBody(t *testing.T) {
	_, err := HeliocentricLongitude("vulcan", J2000)
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Expected ErrUnknownBody for unknown planet, got %v", err)
	}
}

func TestHeliocentricLongitude_EarthAtJ2000(t *testing.T) {
	lon, err := HeliocentricLongitude("earth", J2000)
	if err != nil {
		t.Fatalf("HeliocentricLongitude failed: %v", err)
	}
	// Earth's heliocentric longitude at the epoch, planar element model.
	if math.Abs(lon-100.3802) > 0.01 {
		t.Errorf("Expected ~100.38 degrees, got %f", lon)
	}
}

func TestGeocentricLongitude_EarthIsInvalid(t *testing.T) {
	_, err := GeocentricLongitude("earth", J2000)
	if !errors.Is(err, ErrEarthObserver) {
		t.Errorf("Expected ErrEarthObserver, got %v", err)
	}
}

func TestGeocentricLongitude_UnknownBody(t *testing.T) {
	_, err := GeocentricLongitude("ceres", J2000)
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Expected ErrUnknownBody, got %v", err)
	}
}

func TestGeocentricLongitude_MercuryAtJ2000(t *testing.T) {
	lon, err := GeocentricLongitude("mercury", J2000)
	if err != nil {
		t.Fatalf("GeocentricLongitude failed: %v", err)
	}
	if math.Abs(lon-271.9505) > 0.01 {
		t.Errorf("Expected ~271.95 degrees, got %f", lon)
	}
}

func TestGeocentricLongitude_AllPlanetsInRange(t *testing.T) {
	jd := ToJulianDay(1985, 6, 15, 10, 30)
	for _, planet := range geocentricPlanets {
		lon, err := GeocentricLongitude(planet, jd)
		if err != nil {
			t.Fatalf("GeocentricLongitude(%s) failed: %v", planet, err)
		}
		if lon < 0 || lon >= 360 {
			t.Errorf("Longitude out of range for %s: %f", planet, lon)
		}
	}
}

func TestIsRetrograde_SunAndMoonNever(t *testing.T) {
	for _, body := range []string{"sun", "moon"} {
		retro, err := isRetrograde(body, J2000)
		if err != nil {
			t.Fatalf("isRetrograde(%s) failed: %v", body, err)
		}
		if retro {
			t.Errorf("%s must never be retrograde", body)
		}
	}
}

func TestIsRetrograde_PlutoSpring1990(t *testing.T) {
	// Pluto was in apparent retrograde motion in late March 1990.
	jd := ToJulianDay(1990, 3, 25, 17, 0)
	retro, err := isRetrograde("pluto", jd)
	if err != nil {
		t.Fatalf("isRetrograde failed: %v", err)
	}
	if !retro {
		t.Errorf("Expected pluto retrograde on 1990-03-25")
	}
}

func TestIsRetrograde_UnknownBody(t *testing.T) {
	_, err := isRetrograde("vulcan", J2000)
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Expected ErrUnknownBody, got %v", err)
	}
}
