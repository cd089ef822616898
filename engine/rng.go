// This file is part of itl.
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

package engine

import "math/rand/v2"

// seedRNG reseeds the engine's RNG deterministically, implementing the
// "'" + primary seeding form (spec.md 4.3 item 6). Per DESIGN.md's Open
// Question decision, draws after seeding land in [0, 1) via Float64.
func (e *Engine) seedRNG(seed int64) {
	s := uint64(seed)
	e.rng = rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
