package game

import "sync"

type Summary struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

// Statistics counts finished sessions for the lifetime of the process.
type Statistics struct {
	mu sync.Mutex
	s  Summary
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (st *Statistics) Record(o Outcome) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Played++
	if o.Won {
		st.s.Won++
	}
}

func (st *Statistics) Summary() Summary {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}
