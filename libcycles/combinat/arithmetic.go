// Package combinat carries the closed-form number theory that
// independently predicts vertex, edge, face, and genus counts of the
// covers. The builders never consume it; the test suite and the CLI
// data table cross-check against it.
package combinat

// ArithFn is an arithmetic function on positive integers.
type ArithFn func(n int64) int64

// Divisors returns all positive divisors of n, unordered.
func Divisors(n int64) []int64 {
	var out []int64
	for x := int64(1); x*x <= n; x++ {
		if n%x == 0 {
			out = append(out, x)
			if x*x != n {
				out = append(out, n/x)
			}
		}
	}
	return out
}

// Totient is Euler's phi.
func Totient(n int64) int64 {
	count := int64(0)
	for x := int64(1); x <= n; x++ {
		if gcd(x, n) == 1 {
			count++
		}
	}
	return count
}

// Moebius is the Möbius function mu.
func Moebius(n int64) int64 {
	if n == 1 {
		return 1
	}
	result := int64(1)
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			result = -result
			n /= i
			if n%i == 0 {
				return 0
			}
		}
	}
	if n > 1 {
		result = -result
	}
	return result
}

// Dirichlet is the Dirichlet convolution (f * g)(n).
func Dirichlet(f, g ArithFn, n int64) int64 {
	sum := int64(0)
	for _, d := range Divisors(n) {
		sum += f(d) * g(n/d)
	}
	return sum
}

// MoebiusInversion recovers f from its divisor sums: given
// F(n) = sum_{d|n} f(d), returns f(n) = (mu * F)(n).
func MoebiusInversion(F ArithFn, n int64) int64 {
	return Dirichlet(Moebius, F, n)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func ipow(base, exp int64) int64 {
	out := int64(1)
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}
