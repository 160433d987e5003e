package scraper

// Deduplicator folds record streams into one set keyed by CourseRecord.ID.
// The first record seen for an id wins; later ones are dropped. Export files
// are added to incrementally, so a re-scraped duplicate must not replace
// data that was already collected.
type Deduplicator struct {
	seen   map[string]bool
	unique []CourseRecord
}

// NewDeduplicator creates an empty Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]bool)}
}

// Add folds records in order and returns how many were new.
func (d *Deduplicator) Add(records ...CourseRecord) int {
	added := 0
	for _, r := range records {
		if d.seen[r.ID] {
			continue
		}
		d.seen[r.ID] = true
		d.unique = append(d.unique, r)
		added++
	}
	return added
}

// Records returns the surviving records in first-seen order. It never returns nil.
func (d *Deduplicator) Records() []CourseRecord {
	if d.unique == nil {
		return []CourseRecord{}
	}
	return d.unique
}

// Len returns the number of distinct ids seen so far.
func (d *Deduplicator) Len() int {
	return len(d.unique)
}

// Deduplicate removes records whose id was already seen earlier in the slice.
func Deduplicate(records []CourseRecord) []CourseRecord {
	d := NewDeduplicator()
	d.Add(records...)
	return d.Records()
}
