package view

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"strconv"
	"sync"
	"time"

	"todoctl/internal/service"
)

// Cache memoizes the most recent pipeline computation, keyed by a
// structural hash of (collection, filters). The derived view is recomputed
// whenever its inputs change and reused verbatim when they do not, so
// re-rendering the same state is free and provably deterministic.
//
// One entry is enough: renders are keyed off the current state, exactly
// like the recomputation the view layer performs.
type Cache struct {
	mu sync.Mutex

	personalKey string
	personal    []service.Task

	aggregateKey string
	aggregate    Page
}

// Personal is Personal() behind the memo.
func (c *Cache) Personal(tasks []service.Task, day string, loc *time.Location) []service.Task {
	key := inputHash(tasks, day, "", loc, 0)

	c.mu.Lock()
	defer c.mu.Unlock()
	if key == c.personalKey && c.personal != nil {
		return c.personal
	}
	out := Personal(tasks, day, loc)
	c.personalKey = key
	c.personal = out
	return out
}

// Aggregate is Aggregate() behind the memo.
func (c *Cache) Aggregate(tasks []service.Task, query, day string, loc *time.Location, page int) Page {
	key := inputHash(tasks, day, query, loc, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if key == c.aggregateKey && c.aggregate.Groups != nil {
		return c.aggregate
	}
	out := Aggregate(tasks, query, day, loc, page)
	c.aggregateKey = key
	c.aggregate = out
	return out
}

// inputHash computes a deterministic structural hash of the pipeline
// inputs. All fields are length-prefixed to avoid ambiguity between
// adjacent values.
func inputHash(tasks []service.Task, day, query string, loc *time.Location, page int) string {
	h := sha256.New()

	writeField(h, []byte(day))
	writeField(h, []byte(query))
	writeField(h, []byte(loc.String()))
	writeField(h, []byte(strconv.Itoa(page)))
	writeField(h, []byte(strconv.Itoa(len(tasks))))

	for _, t := range tasks {
		writeField(h, []byte(t.ID))
		writeField(h, []byte(t.Title))
		if t.Completed {
			writeField(h, []byte{1})
		} else {
			writeField(h, []byte{0})
		}
		var ts [8]byte
		binary.BigEndian.PutUint64(ts[:], uint64(t.CreatedAt.UnixNano()))
		writeField(h, ts[:])
		if t.User != nil {
			writeField(h, []byte(t.User.ID))
			writeField(h, []byte(t.User.Name))
			writeField(h, []byte(t.User.Email))
		} else {
			writeField(h, nil)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, data []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(data)))
	h.Write(n[:])
	h.Write(data)
}
