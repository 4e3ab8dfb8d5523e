package jpholiday

// The equinox days are approximated with the linear formula published for
// 2000–2099. Outside that window the formula drifts, so no equinox day is
// reported and the equinox rules never match.
const (
	equinoxFirstYear = 2000
	equinoxLastYear  = 2099

	vernalEquinoxBase   = 20.69115
	autumnalEquinoxBase = 23.09
	equinoxDrift        = 0.242194
)

// VernalEquinox returns the day of March on which the vernal equinox falls in
// year. ok is false outside 2000–2099.
func VernalEquinox(year int) (day int, ok bool) {
	return equinoxDay(vernalEquinoxBase, year)
}

// AutumnalEquinox returns the day of September on which the autumnal equinox
// falls in year. ok is false outside 2000–2099.
func AutumnalEquinox(year int) (day int, ok bool) {
	return equinoxDay(autumnalEquinoxBase, year)
}

func equinoxDay(base float64, year int) (int, bool) {
	if year < equinoxFirstYear || year > equinoxLastYear {
		return 0, false
	}
	n := year - equinoxFirstYear
	return int(base + equinoxDrift*float64(n) - float64(n/4)), true
}
