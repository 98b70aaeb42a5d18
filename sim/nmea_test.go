package sim

import (
	"strings"
	"testing"
	"time"
)

func TestCalculateChecksum(t *testing.T) {
	// Known-good sentence from the NMEA 0183 specification examples
	if got := calculateChecksum("$GPGLL,4916.45,N,12311.12,W,225444,A"); got != "31" {
		t.Errorf("calculateChecksum = %s, expected 31", got)
	}
}

func TestFormatNMEA(t *testing.T) {
	got := formatNMEA("$GPGLL,4916.45,N,12311.12,W,225444,A")
	if got != "$GPGLL,4916.45,N,12311.12,W,225444,A*31\r\n" {
		t.Errorf("formatNMEA = %q", got)
	}
}

func TestNMEALatLon(t *testing.T) {
	latField, latHem, lonField, lonHem := nmeaLatLon(-33.8575, 151.215)
	if latField != "3351.4500" || latHem != "S" {
		t.Errorf("latitude fields = %s %s, expected 3351.4500 S", latField, latHem)
	}
	if lonField != "15112.9000" || lonHem != "E" {
		t.Errorf("longitude fields = %s %s, expected 15112.9000 E", lonField, lonHem)
	}
}

func TestGenerateSentences(t *testing.T) {
	fix := Fix{
		Latitude:  -35.363262,
		Longitude: 149.165237,
		Altitude:  634.0,
		Speed:     12.0,
		Course:    90.0,
		HaveFix:   true,
	}
	timestamp := time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC)

	sentences := generateSentences(fix, timestamp)
	if len(sentences) != 4 {
		t.Fatalf("got %d sentences, expected 4", len(sentences))
	}

	prefixes := []string{"$GPGGA", "$GPRMC", "$GPGLL", "$GPVTG"}
	for i, sentence := range sentences {
		if !strings.HasPrefix(sentence, prefixes[i]) {
			t.Errorf("sentence %d = %q, expected prefix %s", i, sentence, prefixes[i])
		}
		if !strings.HasSuffix(sentence, "\r\n") {
			t.Errorf("sentence %d missing CRLF terminator: %q", i, sentence)
		}
		if !strings.Contains(sentence, "*") {
			t.Errorf("sentence %d missing checksum: %q", i, sentence)
		}
	}

	if !strings.Contains(sentences[0], "123456") {
		t.Errorf("GGA missing UTC time: %q", sentences[0])
	}
	if !strings.Contains(sentences[0], "634.0") {
		t.Errorf("GGA missing altitude: %q", sentences[0])
	}
	if !strings.Contains(sentences[1], "010624") {
		t.Errorf("RMC missing date: %q", sentences[1])
	}
}

func TestGenerateSentencesNoFix(t *testing.T) {
	fix := Fix{Latitude: -35.36, Longitude: 149.16, HaveFix: false}
	timestamp := time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC)

	sentences := generateSentences(fix, timestamp)

	if !strings.HasPrefix(sentences[0], "$GPGGA,123456,,,,,0,00") {
		t.Errorf("no-fix GGA should report fix quality 0: %q", sentences[0])
	}
	if !strings.Contains(sentences[1], ",V,") {
		t.Errorf("no-fix RMC should be flagged void: %q", sentences[1])
	}
}
