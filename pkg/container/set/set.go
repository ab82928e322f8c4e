/*
 *     Copyright 2022 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

type Set[T comparable] interface {
	Values() []T
	Add(T) bool
	Delete(T)
	Contains(...T) bool
	Len() uint
	Range(func(T) bool)
	Clear()
}

type set[T comparable] map[T]struct{}

// New returns a set holding vals.
func New[T comparable](vals ...T) Set[T] {
	s := set[T]{}
	for _, v := range vals {
		s.Add(v)
	}

	return &s
}

func (s *set[T]) Values() []T {
	var result []T
	s.Range(func(v T) bool {
		result = append(result, v)
		return true
	})

	return result
}

func (s *set[T]) Add(v T) bool {
	_, found := (*s)[v]
	if found {
		return false
	}

	(*s)[v] = struct{}{}
	return true
}

func (s *set[T]) Delete(v T) {
	delete(*s, v)
}

func (s *set[T]) Contains(vals ...T) bool {
	for _, v := range vals {
		if _, ok := (*s)[v]; !ok {
			return false
		}
	}

	return true
}

func (s *set[T]) Len() uint {
	return uint(len(*s))
}

func (s *set[T]) Range(fn func(T) bool) {
	for v := range *s {
		if !fn(v) {
			break
		}
	}
}

func (s *set[T]) Clear() {
	*s = set[T]{}
}

// Sorted returns the values of s in ascending order.
func Sorted[T constraints.Ordered](s Set[T]) []T {
	values := s.Values()
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}
