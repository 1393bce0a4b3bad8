// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package phoneme holds the Nepali phoneme inventory: the tables mapping
// Devanagari letters, vowel signs, diacritics and special conjuncts to
// ARPABET, and the predicates used to classify characters.
//
// The tables are immutable. Callers must not modify the exported maps.
package phoneme
