package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// chronological is a private implementation to keep the history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history. An existing value at that date is overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		// A point already exists at that date, the last write wins.
		h.values[i] = q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	h.sort()
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	i := slices.Index(h.days, day)
	if i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise the zero value and false.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})
	if found {
		return h.values[i], true
	}
	if i == 0 {
		var zero T
		return zero, false // No date on or before the given day.
	}
	return h.values[i-1], true
}

// Map returns a new history with fn applied to every value.
func (h *History[T]) Map(fn func(T) T) History[T] {
	out := History[T]{
		days:   slices.Clone(h.days),
		values: make([]T, len(h.values)),
	}
	for i, v := range h.values {
		out.values[i] = fn(v)
	}
	return out
}

// iterate returns an iterator over all unique, sorted dates from multiple series of dates.
func iterate(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		for {
			// Find the minimum date not yet consumed across all series.
			var m Date
			found := false
			for i, index := range indexes {
				if index >= len(series[i]) {
					continue
				}
				if on := series[i][index]; !found || on.Before(m) {
					m, found = on, true
				}
			}
			if !found {
				return // All series have been consumed.
			}
			// Consume every series positioned on that date.
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Iterate returns an iterator over all unique, sorted dates from multiple histories.
func Iterate[T float32 | float64 | string](histories ...*History[T]) iter.Seq[Date] {
	dates := make([][]Date, 0, len(histories))
	for _, h := range histories {
		dates = append(dates, h.days)
	}
	return iterate(dates...)
}

// SumForwardFilled sums multiple histories pointwise over the union of their dates.
// A history with a gap at a date contributes its most recent earlier value instead
// (forward fill), so a single sparse series cannot dent the combined curve. Dates
// before a history's first point contribute nothing for that history.
func SumForwardFilled(histories ...*History[float64]) History[float64] {
	var out History[float64]
	for on := range Iterate(histories...) {
		var total float64
		for _, h := range histories {
			if v, ok := h.ValueAsOf(on); ok {
				total += v
			}
		}
		out.Append(on, total)
	}
	return out
}
