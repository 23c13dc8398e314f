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

package classgroup

import "math/big"

// CachedExp speeds up repeated exponentiation of the same base by keeping a
// table of f^(2^0), f^(2^1), f^(2^2), ... and combining the entries whose bit
// is set in the exponent, LSB first. A public key's fixed generator is
// exponentiated by a fresh random scalar on every Encrypt call, so building
// this table once amortizes the squaring cost across every encryption made
// under the same key.
type CachedExp struct {
	base  *Form
	ctx   *Ctx
	cache []*Form
}

// NewCachedExp wraps base for repeated exponentiation. ctx is retained and
// reused for every Exp and cache-extension call; it must not be used
// concurrently from another goroutine while this CachedExp is in use.
func NewCachedExp(base *Form, ctx *Ctx) *CachedExp {
	return &CachedExp{base: base, ctx: ctx, cache: nil}
}

// Exp returns base^power, growing the internal table if power needs more
// bits than have been cached so far.
func (c *CachedExp) Exp(power *big.Int) (*Form, error) {
	result := Principal(c.base.discriminant)
	if power.Sign() == 0 {
		return result, nil
	}
	if power.Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	if err := c.buildCache(power.BitLen()); err != nil {
		return nil, err
	}

	for i := 0; i < power.BitLen(); i++ {
		if power.Bit(i) == 0 {
			continue
		}
		composed, err := Compose(result, c.cache[i], c.ctx)
		if err != nil {
			return nil, err
		}
		result = composed
	}
	return result, nil
}

// buildCache extends the table so it has at least n entries: cache[i] holds
// base^(2^i).
func (c *CachedExp) buildCache(n int) error {
	current := len(c.cache)
	if current >= n {
		return nil
	}

	var last *Form
	if current == 0 {
		last = c.base.Copy()
		c.cache = append(c.cache, last)
		current++
	} else {
		last = c.cache[current-1]
	}

	for i := current; i < n; i++ {
		squared, err := Compose(last, last, c.ctx)
		if err != nil {
			return err
		}
		c.cache = append(c.cache, squared)
		last = squared
	}
	return nil
}
