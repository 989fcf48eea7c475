package domain

// NumerologyProfile holds the three core numbers, each in
// {1..9, 11, 22, 33}. Pure function of full name + birth date.
type NumerologyProfile struct {
	LifePath   int `json:"life_path"`
	SoulUrge   int `json:"soul_urge"`
	Expression int `json:"expression"`
}

// IsMasterNumber reports whether n is one of the master numbers that are
// never reduced further.
func IsMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}
