package query

import (
	"sync"

	. "gopkg.in/check.v1"
)

type CacheSuite struct {
	cache *Cache
}

var _ = Suite(&CacheSuite{})

func (s *CacheSuite) SetUpTest(c *C) {
	var err error
	s.cache, err = NewCache(2)
	c.Assert(err, IsNil)
}

func (s *CacheSuite) TestGet(c *C) {
	q := s.cache.Get("a = /b/")
	c.Check(q.Type(), Equals, Valid)
	c.Check(s.cache.Get("a = /b/"), Equals, q)
	c.Check(s.cache.Len(), Equals, 1)

	hits, misses := s.cache.Stats()
	c.Check(hits, Equals, uint64(1))
	c.Check(misses, Equals, uint64(1))
}

func (s *CacheSuite) TestEviction(c *C) {
	first := s.cache.Get("a test")
	s.cache.Get("b = c")
	s.cache.Get("#(track > 3)")
	c.Check(s.cache.Len(), Equals, 2)

	c.Check(s.cache.Get("a test"), Not(Equals), first)

	s.cache.Purge()
	c.Check(s.cache.Len(), Equals, 0)
}

func (s *CacheSuite) TestOptions(c *C) {
	cache, err := NewCache(10, WithStar([]string{"title"}))
	c.Assert(err, IsNil)
	c.Check(cache.Get("foo").Star(), DeepEquals, []string{"title"})
}

func (s *CacheSuite) TestBadSize(c *C) {
	_, err := NewCache(0)
	c.Check(err, ErrorMatches, "unable to create query cache of size 0: .*")
}

func (s *CacheSuite) TestConcurrent(c *C) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.cache.Get("a = /b/")
			}
		}()
	}
	wg.Wait()

	hits, misses := s.cache.Stats()
	c.Check(hits+misses, Equals, uint64(1000))
}
