// Copyright 2025 go-polygcd Authors
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

// Package frontend supplies the collaborators the core split/join
// engine treats as given: input validation, the zero- and
// one-variable trivial cases, integer content strip/reattach, and the
// variable permutation between a caller's flat sparse polynomial and
// the internal distributed-univariate-over-a-main-variable form the
// core operates on.
package frontend
