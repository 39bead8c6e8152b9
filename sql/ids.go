// Copyright 2022 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"sync"
	"sync/atomic"
)

// ColumnID identifies a column within one analyzed tree. Ids start at 1, the
// zero value means the id was never assigned.
type ColumnID int

// ColumnIDSequence mints monotonically increasing column ids. It is safe for
// concurrent use, so a caller owned sequence can serve several analyses at
// once without ever repeating an id.
type ColumnIDSequence struct {
	last int64
}

// NewColumnIDSequence returns a sequence whose first id is 1.
func NewColumnIDSequence() *ColumnIDSequence {
	return &ColumnIDSequence{}
}

// Next returns the next unused column id.
func (s *ColumnIDSequence) Next() ColumnID {
	return ColumnID(atomic.AddInt64(&s.last, 1))
}

// Last returns the highest id handed out so far, or zero when the sequence
// is untouched.
func (s *ColumnIDSequence) Last() ColumnID {
	return ColumnID(atomic.LoadInt64(&s.last))
}

// AdvancePast moves the sequence forward so that every id it mints afterwards
// is greater than the given one. It never moves the sequence backwards.
func (s *ColumnIDSequence) AdvancePast(id ColumnID) {
	for {
		cur := atomic.LoadInt64(&s.last)
		if cur >= int64(id) {
			return
		}
		if atomic.CompareAndSwapInt64(&s.last, cur, int64(id)) {
			return
		}
	}
}

// IDPool interns identifier strings. Identifiers minted during rewrites share
// storage with the ones minted during resolution, so identifier-heavy trees
// do not duplicate their names on every pass.
type IDPool struct {
	mu       sync.Mutex
	interned map[string]string
}

// NewIDPool returns an empty pool.
func NewIDPool() *IDPool {
	return &IDPool{interned: make(map[string]string)}
}

// Intern returns the pooled copy of s, adding it to the pool on first use.
func (p *IDPool) Intern(s string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pooled, ok := p.interned[s]; ok {
		return pooled
	}
	p.interned[s] = s
	return s
}

// Size returns the number of distinct identifiers in the pool.
func (p *IDPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.interned)
}
