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

// Package merge CRTs several integer images of one polynomial
// coefficient (CRTPoly) or of one outer-exponent term of a PolyU
// (CRTExp) into a single result, using a compiled crt.Prog whose i-th
// modulus corresponds to the i-th image. Both functions also track
// running (max, sum) magnitude tallies used by the orchestrator's
// rational-reconstruction bound check.
package merge
