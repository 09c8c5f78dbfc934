package bookstore

import (
	"cmp"
	"slices"
)

// NewGenreReport counts the distinct titles per Genre cell value.
//
// Books with an empty Genre are left out, as are empty titles. Genres with
// the same count are sorted by name.
func NewGenreReport(inv *Inventory) *GenreReport {
	titles := make(map[string]map[string]bool)
	for _, b := range inv.books {
		if b.Genre == "" {
			continue
		}
		if titles[b.Genre] == nil {
			titles[b.Genre] = make(map[string]bool)
		}
		if b.Title != "" {
			titles[b.Genre][b.Title] = true
		}
	}

	r := &GenreReport{Genres: make([]GenreCount, 0, len(titles))}
	for genre, set := range titles {
		r.Genres = append(r.Genres, GenreCount{Genre: genre, Count: len(set)})
	}
	slices.SortFunc(r.Genres, func(a, b GenreCount) int { return cmp.Compare(a.Genre, b.Genre) })
	slices.SortStableFunc(r.Genres, func(a, b GenreCount) int { return cmp.Compare(b.Count, a.Count) })
	return r
}

// NewGenreDistribution counts the books per genre label.
func NewGenreDistribution(inv *Inventory) *GenreDistribution {
	d := &GenreDistribution{Genres: make([]GenreCount, 0)}
	index := make(map[string]int) // position of a label in d.Genres
	for _, b := range inv.books {
		for _, label := range b.Genres() {
			i, ok := index[label]
			if !ok {
				i = len(d.Genres)
				index[label] = i
				d.Genres = append(d.Genres, GenreCount{Genre: label})
			}
			d.Genres[i].Count++
		}
	}
	return d
}

// Max returns the highest count, or 0 if there are no genres.
func (d *GenreDistribution) Max() int {
	m := 0
	for _, g := range d.Genres {
		m = max(m, g.Count)
	}
	return m
}
