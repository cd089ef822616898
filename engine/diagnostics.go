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

import "github.com/YouDevIt/itl/internal/diag"

// Diagnostic kind aliases, so the rest of the engine package doesn't
// import internal/diag directly at every call site.
const (
	diagKindParse = diag.KindParse
	diagKindArith = diag.KindArith
	diagKindHost  = diag.KindHost
)
