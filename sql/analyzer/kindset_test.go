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

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewriteSetOrdersAndDedups(t *testing.T) {
	require := require.New(t)

	set := NewRewriteSet(RewriteWithExpr, RewriteTypeof, RewriteWithExpr, RewriteNullIfError)
	require.Equal([]RewriteKind{RewriteNullIfError, RewriteTypeof, RewriteWithExpr}, set.Kinds())
	require.Equal(3, set.Len())
	require.False(set.Empty())

	require.True(NewRewriteSet().Empty())
	require.True(RewriteSet{}.Empty())
}

func TestRewriteSetContains(t *testing.T) {
	require := require.New(t)

	set := NewRewriteSet(RewriteTypeof, RewriteNullIfError)
	require.True(set.Contains(RewriteTypeof))
	require.True(set.Contains(RewriteNullIfError))
	require.False(set.Contains(RewriteAnonymization))
	require.False(RewriteSet{}.Contains(RewriteTypeof))
}

func TestRewriteSetAddRemoveAreImmutable(t *testing.T) {
	require := require.New(t)

	set := NewRewriteSet(RewriteTypeof)

	added := set.Add(RewriteWithExpr)
	require.True(added.Contains(RewriteWithExpr))
	require.False(set.Contains(RewriteWithExpr))

	// Adding a present kind returns the set as is.
	require.True(set.Add(RewriteTypeof).Equal(set))

	removed := added.Remove(RewriteTypeof)
	require.False(removed.Contains(RewriteTypeof))
	require.True(added.Contains(RewriteTypeof))

	// Removing an absent kind returns the set as is.
	require.True(set.Remove(RewriteAnonymization).Equal(set))
}

func TestRewriteSetIntersect(t *testing.T) {
	require := require.New(t)

	a := NewRewriteSet(RewriteInlineFunctions, RewriteTypeof, RewriteWithExpr)
	b := NewRewriteSet(RewriteTypeof, RewriteWithExpr, RewriteAnonymization)

	both := a.Intersect(b)
	require.Equal([]RewriteKind{RewriteTypeof, RewriteWithExpr}, both.Kinds())

	require.True(a.Intersect(RewriteSet{}).Empty())
	require.True(RewriteSet{}.Intersect(b).Empty())
}

func TestRewriteSetEqual(t *testing.T) {
	require := require.New(t)

	require.True(NewRewriteSet(RewriteTypeof, RewriteNullIfError).
		Equal(NewRewriteSet(RewriteNullIfError, RewriteTypeof)))
	require.False(NewRewriteSet(RewriteTypeof).Equal(NewRewriteSet(RewriteNullIfError)))
	require.False(NewRewriteSet(RewriteTypeof).Equal(RewriteSet{}))
	require.True(RewriteSet{}.Equal(NewRewriteSet()))
}

func TestRewriteSetString(t *testing.T) {
	require := require.New(t)

	require.Equal("{}", RewriteSet{}.String())
	require.Equal("{nulliferror, typeof}",
		NewRewriteSet(RewriteTypeof, RewriteNullIfError).String())
}

func TestRewriteSetKindsCopies(t *testing.T) {
	require := require.New(t)

	set := NewRewriteSet(RewriteTypeof, RewriteNullIfError)
	kinds := set.Kinds()
	kinds[0] = RewriteAnonymization
	require.Equal([]RewriteKind{RewriteNullIfError, RewriteTypeof}, set.Kinds())
}
