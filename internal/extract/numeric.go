package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

var (
	currencyRx   = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?\s*(?:thousand|million|billion|trillion)?`)
	percentageRx = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent(?:age points?)?)`)
	bareNumberRx = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\s*(?:thousand|million|billion|trillion)?\b`)
	magnitudeRx  = regexp.MustCompile(`(?i)thousand|million|billion|trillion`)
	valueTokenRx = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// extractNumericClaims finds currency, percentage and bare-number tokens
// in a sentence. Currency and percentage matches shadow the bare-number
// pass so each token is reported once with its most specific kind.
func extractNumericClaims(sentence string) []model.NumericClaim {
	var claims []model.NumericClaim
	covered := make([][2]int, 0, 4)

	for _, loc := range currencyRx.FindAllStringIndex(sentence, -1) {
		text := sentence[loc[0]:loc[1]]
		claims = append(claims, numericClaim(text, "currency"))
		covered = append(covered, [2]int{loc[0], loc[1]})
	}
	for _, loc := range percentageRx.FindAllStringIndex(sentence, -1) {
		if overlaps(covered, loc) {
			continue
		}
		text := sentence[loc[0]:loc[1]]
		claims = append(claims, numericClaim(text, "percentage"))
		covered = append(covered, [2]int{loc[0], loc[1]})
	}
	for _, loc := range bareNumberRx.FindAllStringIndex(sentence, -1) {
		if overlaps(covered, loc) {
			continue
		}
		text := sentence[loc[0]:loc[1]]
		claims = append(claims, numericClaim(text, "number"))
	}

	return claims
}

func numericClaim(text, kind string) model.NumericClaim {
	claim := model.NumericClaim{Text: strings.TrimSpace(text), Kind: kind}

	if m := magnitudeRx.FindString(text); m != "" {
		claim.Magnitude = strings.ToLower(m)
	}

	plain := strings.ReplaceAll(text, ",", "")
	if num := valueTokenRx.FindString(plain); num != "" {
		if v, err := strconv.ParseFloat(num, 64); err == nil {
			claim.Value = v
		}
	}

	return claim
}

func overlaps(covered [][2]int, loc []int) bool {
	for _, c := range covered {
		if loc[0] < c[1] && loc[1] > c[0] {
			return true
		}
	}
	return false
}
