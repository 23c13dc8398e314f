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

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func expectForm(got *Form, a, b, c *big.Int) {
	ExpectWithOffset(1, got.A().Cmp(a)).Should(Equal(0))
	ExpectWithOffset(1, got.B().Cmp(b)).Should(Equal(0))
	ExpectWithOffset(1, got.C().Cmp(c)).Should(Equal(0))
}

var _ = Describe("classgroup", func() {
	Context("New()", func() {
		It("rejects a non-negative discriminant", func() {
			got, err := New(big.NewInt(1), big.NewInt(10), big.NewInt(10))
			Expect(got).Should(BeNil())
			Expect(err).Should(Equal(ErrInvalidDiscriminant))
		})
	})

	DescribeTable("reduce()", func(ia, ib, ic, ea, eb, ec *big.Int) {
		got, err := New(ia, ib, ic)
		Expect(err).Should(BeNil())
		expectForm(got, ea, eb, ec)
	},
		Entry("(33,11,5) -> (5,-1,27)",
			big.NewInt(33), big.NewInt(11), big.NewInt(5),
			big.NewInt(5), big.NewInt(-1), big.NewInt(27)),
		Entry("(15,1,15) -> (15,1,15)",
			big.NewInt(15), big.NewInt(1), big.NewInt(15),
			big.NewInt(15), big.NewInt(1), big.NewInt(15)),
		Entry("(6,3,1) -> (1,1,4)",
			big.NewInt(6), big.NewInt(3), big.NewInt(1),
			big.NewInt(1), big.NewInt(1), big.NewInt(4)),
		Entry("(1,3,3) -> (1,1,1)",
			big.NewInt(1), big.NewInt(3), big.NewInt(3),
			big.NewInt(1), big.NewInt(1), big.NewInt(1)),
		Entry("(4,5,3) -> (2,-1,3)",
			big.NewInt(4), big.NewInt(5), big.NewInt(3),
			big.NewInt(2), big.NewInt(-1), big.NewInt(3)),
	)

	DescribeTable("Compose()", func(a1, b1, c1, a2, b2, c2, ea, eb, ec *big.Int) {
		f1, err := New(a1, b1, c1)
		Expect(err).Should(BeNil())
		f2, err := New(a2, b2, c2)
		Expect(err).Should(BeNil())
		got, err := Compose(f1, f2, NewCtx())
		Expect(err).Should(BeNil())
		expectForm(got, ea, eb, ec)
	},
		Entry("(1,1,6)*(1,1,6) = (1,1,6)",
			big.NewInt(1), big.NewInt(1), big.NewInt(6),
			big.NewInt(1), big.NewInt(1), big.NewInt(6),
			big.NewInt(1), big.NewInt(1), big.NewInt(6)),
		Entry("(2,-1,3)*(2,-1,3) = (2,1,3)",
			big.NewInt(2), big.NewInt(-1), big.NewInt(3),
			big.NewInt(2), big.NewInt(-1), big.NewInt(3),
			big.NewInt(2), big.NewInt(1), big.NewInt(3)),
		Entry("(2,-1,3)*(2,1,3) = (1,1,6)",
			big.NewInt(2), big.NewInt(-1), big.NewInt(3),
			big.NewInt(2), big.NewInt(1), big.NewInt(3),
			big.NewInt(1), big.NewInt(1), big.NewInt(6)),
		Entry("(31,13,15948)*(31,13,15948) = (678,-563,846)",
			big.NewInt(31), big.NewInt(13), big.NewInt(15948),
			big.NewInt(31), big.NewInt(13), big.NewInt(15948),
			big.NewInt(678), big.NewInt(-563), big.NewInt(846)),
		Entry("(142,31,3483)*(677,459,808) = (129,31,3834)",
			big.NewInt(142), big.NewInt(31), big.NewInt(3483),
			big.NewInt(677), big.NewInt(459), big.NewInt(808),
			big.NewInt(129), big.NewInt(31), big.NewInt(3834)),
	)

	Context("Compose()", func() {
		It("rejects mismatched discriminants", func() {
			f1, err := New(big.NewInt(1), big.NewInt(1), big.NewInt(6))
			Expect(err).Should(BeNil())
			f2, err := New(big.NewInt(2), big.NewInt(1), big.NewInt(3))
			Expect(err).Should(BeNil())
			f2c := f2.Copy()
			f2c.discriminant.Sub(f2c.discriminant, big1)
			_, err = Compose(f1, f2c, NewCtx())
			Expect(err).Should(Equal(ErrDifferentDiscriminant))
		})

		It("squaring equals self-composition", func() {
			f, err := New(big.NewInt(19), big.NewInt(17), big.NewInt(26022))
			Expect(err).Should(BeNil())
			ctx := NewCtx()
			got, err := Compose(f, f, ctx)
			Expect(err).Should(BeNil())
			expectForm(got, big.NewInt(361), big.NewInt(-135), big.NewInt(1382))
		})
	})

	DescribeTable("Pow()", func(ia, ib, ic, ea, eb, ec, exp *big.Int) {
		f, err := New(ia, ib, ic)
		Expect(err).Should(BeNil())
		got, err := Pow(f, exp, NewCtx())
		Expect(err).Should(BeNil())
		expectForm(got, ea, eb, ec)
	},
		Entry("(2,1,3)^6 = (1,1,6)",
			big.NewInt(2), big.NewInt(1), big.NewInt(3),
			big.NewInt(1), big.NewInt(1), big.NewInt(6),
			big.NewInt(6)),
		Entry("(31,13,15948)^200 = (678,341,772)",
			big.NewInt(31), big.NewInt(13), big.NewInt(15948),
			big.NewInt(678), big.NewInt(341), big.NewInt(772),
			big.NewInt(200)),
		Entry("(101,55,4902)^1 = (101,55,4902)",
			big.NewInt(101), big.NewInt(55), big.NewInt(4902),
			big.NewInt(101), big.NewInt(55), big.NewInt(4902),
			big.NewInt(1)),
	)

	Context("Pow()", func() {
		It("rejects a negative exponent", func() {
			f, err := New(big.NewInt(101), big.NewInt(55), big.NewInt(4902))
			Expect(err).Should(BeNil())
			_, err = Pow(f, big.NewInt(-10), NewCtx())
			Expect(err).Should(Equal(ErrNegativeExponent))
		})

		It("f^n composed with (f^-1)^n is the identity", func() {
			f, err := New(big.NewInt(101), big.NewInt(55), big.NewInt(4902))
			Expect(err).Should(BeNil())
			ctx := NewCtx()
			fInv := f.Inverse(ctx)
			pos, err := Pow(f, big.NewInt(10), ctx)
			Expect(err).Should(BeNil())
			neg, err := Pow(fInv, big.NewInt(10), ctx)
			Expect(err).Should(BeNil())
			got, err := Compose(pos, neg, ctx)
			Expect(err).Should(BeNil())
			Expect(got.Equal(Principal(f.discriminant))).Should(BeTrue())
		})

		It("agrees with CachedExp for the same base and exponent", func() {
			f, err := New(big.NewInt(31), big.NewInt(13), big.NewInt(15948))
			Expect(err).Should(BeNil())
			ctx := NewCtx()
			want, err := Pow(f, big.NewInt(500), ctx)
			Expect(err).Should(BeNil())
			cached := NewCachedExp(f, NewCtx())
			got, err := cached.Exp(big.NewInt(500))
			Expect(err).Should(BeNil())
			Expect(got.Equal(want)).Should(BeTrue())
		})
	})

	Context("IsPrimitive()", func() {
		It("detects a non-primitive form", func() {
			f := &Form{
				a:            big.NewInt(2),
				b:            big.NewInt(2),
				c:            big.NewInt(4),
				discriminant: big.NewInt(-12),
			}
			Expect(f.IsPrimitive(NewCtx())).Should(BeFalse())
		})
	})

	Context("wire round-trip", func() {
		It("MarshalBinary/UnmarshalFormBinary preserves the form", func() {
			f, err := New(big.NewInt(31), big.NewInt(13), big.NewInt(15948))
			Expect(err).Should(BeNil())
			data, err := f.MarshalBinary()
			Expect(err).Should(BeNil())
			got, err := UnmarshalFormBinary(data, f.Discriminant())
			Expect(err).Should(BeNil())
			Expect(got.Equal(f)).Should(BeTrue())
		})

		It("rejects a nil wire form", func() {
			_, err := FormFromWire(nil, big.NewInt(-7))
			Expect(err).Should(Equal(ErrInvalidMessage))
		})
	})
})

func TestClassgroup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Classgroup Suite")
}
