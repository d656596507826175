// Package phone normaliza teléfonos al formato E.164 con la lada fija del
// negocio: exactamente 10 dígitos locales prefijados con +52.
package phone

import (
	"fmt"
	"strings"
	"unicode"
)

// CountryPrefix lada internacional fija que se antepone a todo teléfono.
const CountryPrefix = "+52"

// LocalDigits cantidad exacta de dígitos locales esperada antes de normalizar.
const LocalDigits = 10

// Normalize elimina espacios interiores, exige exactamente 10 dígitos y
// devuelve el número con la lada. Cualquier otra longitud o carácter se rechaza.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone: carácter inválido %q", r)
		}
		b.WriteRune(r)
	}
	digits := b.String()
	if len(digits) != LocalDigits {
		return "", fmt.Errorf("phone: se esperan %d dígitos, hay %d", LocalDigits, len(digits))
	}
	return CountryPrefix + digits, nil
}
