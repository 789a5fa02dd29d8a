package rbush

import "math"

// quickselect partially sorts arr[left..right] in place so that arr[k] holds
// the value it would hold in a full ascending sort by less, every index below
// k holds a value not greater than arr[k], and every index above k holds a
// value not smaller. Expected linear time (Floyd-Rivest).
func quickselect[E any](arr []E, k, left, right int, less func(a, b E) bool) {
	if k < left || k > right {
		panic("rbush: quickselect rank outside of [left,right]")
	}
	for right > left {
		// On large ranges, narrow in on a sample around the target rank
		// first, so the final partitions stay small.
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := max(left, int(math.Floor(float64(k)-m*s/n+sd)))
			newRight := min(right, int(math.Floor(float64(k)+(n-m)*s/n+sd)))
			quickselect(arr, k, newLeft, newRight, less)
		}

		t := arr[k]
		i := left
		j := right

		arr[left], arr[k] = arr[k], arr[left]
		if less(t, arr[right]) {
			arr[left], arr[right] = arr[right], arr[left]
		}

		for i < j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
			for less(arr[i], t) {
				i++
			}
			for less(t, arr[j]) {
				j--
			}
		}

		if !less(arr[left], t) && !less(t, arr[left]) {
			arr[left], arr[j] = arr[j], arr[left]
		} else {
			j++
			arr[j], arr[right] = arr[right], arr[j]
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// multiSelect rearranges arr[left..right] into contiguous groups of
// approximately n elements each, ordered by less across group boundaries.
// Groups are carved by repeated midpoint selection; elements within a group
// stay unsorted.
func multiSelect[E any](arr []E, left, right, n int, less func(a, b E) bool) {
	stack := []int{left, right}

	for len(stack) > 0 {
		right = stack[len(stack)-1]
		left = stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		if right-left <= n {
			continue
		}

		mid := left + int(math.Ceil(float64(right-left)/float64(n)/2))*n
		quickselect(arr, mid, left, right, less)

		stack = append(stack, left, mid, mid, right)
	}
}
