package library

import (
	"sync"

	"github.com/qlquery/qlquery/match"
)

// Collection is an in-memory list of songs, safe for concurrent use
type Collection struct {
	sync.RWMutex
	songs []*Song
}

// NewCollection creates collection of songs
func NewCollection(songs ...*Song) *Collection {
	return &Collection{songs: append([]*Song(nil), songs...)}
}

// Add appends songs to the collection
func (collection *Collection) Add(songs ...*Song) {
	collection.Lock()
	defer collection.Unlock()

	collection.songs = append(collection.songs, songs...)
}

// Len returns number of songs
func (collection *Collection) Len() int {
	collection.RLock()
	defer collection.RUnlock()

	return len(collection.songs)
}

// Songs returns copy of the list of songs
func (collection *Collection) Songs() []*Song {
	collection.RLock()
	defer collection.RUnlock()

	return append([]*Song(nil), collection.songs...)
}

// Filter returns songs matched by the node
func (collection *Collection) Filter(node match.Node) []*Song {
	collection.RLock()
	defer collection.RUnlock()

	return match.Filter(node, collection.songs)
}

// ForEach runs method for each song, stopping at first error
func (collection *Collection) ForEach(handler func(*Song) error) error {
	collection.RLock()
	defer collection.RUnlock()

	for _, song := range collection.songs {
		if err := handler(song); err != nil {
			return err
		}
	}
	return nil
}
