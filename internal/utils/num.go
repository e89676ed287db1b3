package utils

import "github.com/shopspring/decimal"

// Round3 rounds to three decimal places, the precision every score in the
// system is reported at. Going through decimal avoids float artifacts like
// 0.6000000000000001 leaking into stored documents.
func Round3(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(3).Float64()
	return f
}
