package quadratic

// IsPrime reports whether n is a prime number
func IsPrime(n uint) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 {
		return false
	}
	for f := uint(3); f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest odd prime >= n, rounding an even n
// up by one first. Note that NextPrime(2) is 3.
func NextPrime(n uint) uint {
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
