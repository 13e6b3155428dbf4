package quiz

import "sync"

// quizLocks serializes answer submissions per quiz ID so two concurrent
// submits cannot both pass the finished guard and double-advance the index.
type quizLocks struct {
	m sync.Map // quiz id -> *sync.Mutex
}

func (l *quizLocks) lock(key string) func() {
	v, _ := l.m.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
