package sim

import (
	"fmt"
	"math"
	"time"
)

const msToKnots = 1.0 / 0.514444

// calculateChecksum calculates the NMEA checksum for a sentence
func calculateChecksum(sentence string) string {
	var checksum byte
	for i := 1; i < len(sentence); i++ { // Skip the '$' character
		checksum ^= sentence[i]
	}
	return fmt.Sprintf("%02X", checksum)
}

// formatNMEA formats a complete NMEA sentence with checksum
func formatNMEA(sentence string) string {
	return fmt.Sprintf("%s*%s\r\n", sentence, calculateChecksum(sentence))
}

// nmeaLatLon converts decimal degrees to the NMEA DDMM.MMMM fields.
func nmeaLatLon(lat, lon float64) (latField, latHem, lonField, lonHem string) {
	latDeg := int(math.Abs(lat))
	latMin := (math.Abs(lat) - float64(latDeg)) * 60
	latHem = "N"
	if lat < 0 {
		latHem = "S"
	}

	lonDeg := int(math.Abs(lon))
	lonMin := (math.Abs(lon) - float64(lonDeg)) * 60
	lonHem = "E"
	if lon < 0 {
		lonHem = "W"
	}

	latField = fmt.Sprintf("%02d%07.4f", latDeg, latMin)
	lonField = fmt.Sprintf("%03d%07.4f", lonDeg, lonMin)
	return latField, latHem, lonField, lonHem
}

// generateGGA generates a GGA (fix data) sentence for a fix
func generateGGA(fix Fix, timestamp time.Time) string {
	timeStr := timestamp.UTC().Format("150405")
	if !fix.HaveFix {
		return formatNMEA(fmt.Sprintf("$GPGGA,%s,,,,,0,00,,,,,,,,,", timeStr))
	}

	latField, latHem, lonField, lonHem := nmeaLatLon(fix.Latitude, fix.Longitude)
	sentence := fmt.Sprintf("$GPGGA,%s,%s,%s,%s,%s,1,08,1.2,%.1f,M,0.0,M,,",
		timeStr, latField, latHem, lonField, lonHem, fix.Altitude)
	return formatNMEA(sentence)
}

// generateRMC generates an RMC (recommended minimum) sentence for a fix
func generateRMC(fix Fix, timestamp time.Time) string {
	timeStr := timestamp.UTC().Format("150405")
	dateStr := timestamp.UTC().Format("020106")
	if !fix.HaveFix {
		return formatNMEA(fmt.Sprintf("$GPRMC,%s,V,,,,,,,,%s,,,N", timeStr, dateStr))
	}

	latField, latHem, lonField, lonHem := nmeaLatLon(fix.Latitude, fix.Longitude)
	sentence := fmt.Sprintf("$GPRMC,%s,A,%s,%s,%s,%s,%.1f,%.1f,%s,,,A",
		timeStr, latField, latHem, lonField, lonHem,
		fix.Speed*msToKnots, fix.Course, dateStr)
	return formatNMEA(sentence)
}

// generateGLL generates a GLL (geographic position) sentence for a fix
func generateGLL(fix Fix, timestamp time.Time) string {
	timeStr := timestamp.UTC().Format("150405.00")
	if !fix.HaveFix {
		return formatNMEA(fmt.Sprintf("$GPGLL,,,,,%s,V,N", timeStr))
	}

	latField, latHem, lonField, lonHem := nmeaLatLon(fix.Latitude, fix.Longitude)
	sentence := fmt.Sprintf("$GPGLL,%s,%s,%s,%s,%s,A,A",
		latField, latHem, lonField, lonHem, timeStr)
	return formatNMEA(sentence)
}

// generateVTG generates a VTG (track and ground speed) sentence for a fix
func generateVTG(fix Fix) string {
	if !fix.HaveFix {
		return formatNMEA("$GPVTG,,T,,M,,N,,K,N")
	}
	knots := fix.Speed * msToKnots
	kmh := fix.Speed * 3.6
	sentence := fmt.Sprintf("$GPVTG,%.1f,T,,M,%.1f,N,%.1f,K,A",
		fix.Course, knots, kmh)
	return formatNMEA(sentence)
}

// generateSentences renders the full NMEA block for one fix.
func generateSentences(fix Fix, timestamp time.Time) []string {
	return []string{
		generateGGA(fix, timestamp),
		generateRMC(fix, timestamp),
		generateGLL(fix, timestamp),
		generateVTG(fix),
	}
}
