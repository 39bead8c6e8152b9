// Copyright 2020-2021 Dolthub, Inc.
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

package similartext

import (
	"fmt"
	"reflect"
	"strings"
)

// maxDistancePercent is the maximum Levenshtein distance, as a percentage of
// the length of the searched string, from which a name is not considered
// similar at all.
const maxDistancePercent = 50

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// distanceForStrings returns the edit distance between source and target. It
// has a runtime proportional to len(source) * len(target) and memory use
// proportional to len(target).
func distanceForStrings(source, target []rune) int {
	height := len(source) + 1
	width := len(target) + 1

	prevRow := make([]int, width)
	curRow := make([]int, width)
	for i := 0; i < width; i++ {
		prevRow[i] = i
	}

	for i := 1; i < height; i++ {
		curRow[0] = i
		for j := 1; j < width; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			curRow[j] = min(min(curRow[j-1]+1, prevRow[j]+1), prevRow[j-1]+cost)
		}
		prevRow, curRow = curRow, prevRow
	}

	return prevRow[width-1]
}

// Find returns a string with suggestions for name(s) in `names` similar to
// the string `src`. It returns the empty string when no name is close enough.
func Find(names []string, src string) string {
	if len(src) == 0 {
		return ""
	}

	minDistance := -1
	var matches []string
	for _, name := range names {
		dist := distanceForStrings([]rune(name), []rune(src))
		switch {
		case minDistance == -1 || dist < minDistance:
			minDistance = dist
			matches = []string{name}
		case dist == minDistance:
			matches = append(matches, name)
		}
	}

	if len(matches) == 0 || minDistance*100/len(src) > maxDistancePercent {
		return ""
	}

	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

// FindFromMap does the same as Find but taking a map instead of a string
// slice. Its keys must be strings.
func FindFromMap(names interface{}, src string) string {
	rnames := reflect.ValueOf(names)
	if rnames.Kind() != reflect.Map {
		panic("similartext.FindFromMap: expected a map")
	}

	t := rnames.Type()
	if t.Key().Kind() != reflect.String {
		panic("similartext.FindFromMap: maps with non string keys are not supported")
	}

	var namesList []string
	for _, k := range rnames.MapKeys() {
		namesList = append(namesList, k.String())
	}

	return Find(namesList, src)
}
