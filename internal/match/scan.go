package match

// Байтовые классы для сканеров. Матчеры работают по байтам: все грамматики
// конвенций ASCII-only, не-ASCII байт просто не попадает ни в один класс.

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLowerByte(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpperByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLetterByte(b byte) bool {
	return isLowerByte(b) || isUpperByte(b)
}

func isLowerSnakeByte(b byte) bool {
	return isLowerByte(b) || isDigitByte(b) || b == '_'
}

func isUpperSnakeByte(b byte) bool {
	return isUpperByte(b) || isDigitByte(b) || b == '_'
}

func isKebabByte(b byte) bool {
	return isLowerByte(b) || isDigitByte(b)
}

// scanDigits возвращает длину ведущей цифровой последовательности.
func scanDigits(s string) int {
	i := 0
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	return i
}

// scanTrailingUpper возвращает индекс начала завершающей последовательности
// заглавных букв (len(s), если её нет).
func scanTrailingUpper(s string) int {
	i := len(s)
	for i > 0 && isUpperByte(s[i-1]) {
		i--
	}
	return i
}
