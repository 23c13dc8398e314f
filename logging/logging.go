// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging exposes a single package-level logger every other
// package in this module can call without constructing one, defaulting to
// discarding everything until a host application opts in.
package logging

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the current package-level logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the package-level logger - call this once at process
// startup before any concurrent use.
func SetLogger(l log.Logger) {
	logger = l
}
