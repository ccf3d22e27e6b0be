// Copyright 2025 go-highway Authors
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

package medfilt

import "errors"

// ErrInvalidArgument is returned (wrapped) for negative sizes/radii, length
// mismatches between input and output, or aliased input/output slices.
var ErrInvalidArgument = errors.New("medfilt: invalid argument")

// ErrBlockTooSmall is returned (wrapped) when 2*h+1 exceeds the block size
// for some dimension.
var ErrBlockTooSmall = errors.New("medfilt: block too small for radius")
