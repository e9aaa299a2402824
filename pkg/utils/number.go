package utils

import "math"

// RoundPercent arredonda para o inteiro mais próximo, meio afastando do zero
func RoundPercent(f float64) int {
	return int(math.Round(f))
}

// ChangePercent calcula a variação percentual entre dois valores.
// Previous igual a zero devolve 0 por política: a primeira entrada de uma
// marca nunca deve exibir uma variação infinita.
func ChangePercent(current, previous int) int {
	if previous == 0 || current == previous {
		return 0
	}

	return RoundPercent((float64(current-previous) / float64(previous)) * 100)
}
