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

package cl

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/aisuosuo/clhomo/classgroup"
	"github.com/aisuosuo/clhomo/scalar"
)

var _ = Describe("CL", func() {
	var (
		ctx   *classgroup.Ctx
		group *Group
		sk    *PrivateKey
		pk    *PublicKey
	)

	BeforeEach(func() {
		ctx = classgroup.NewCtx()
		group = Group1827Updated()
		var err error
		sk, pk, err = GenerateKeyPair(group, ctx)
		Expect(err).Should(BeNil())
	})

	It("encrypts and decrypts back to the original plaintext", func() {
		m := scalar.NewFE(big.NewInt(424242))
		c, _, err := Encrypt(pk, m, ctx)
		Expect(err).Should(BeNil())
		got, err := Decrypt(sk, c, ctx)
		Expect(err).Should(BeNil())
		Expect(got.Int().Cmp(m.Int())).Should(Equal(0))
	})

	It("decrypts a zero plaintext", func() {
		m := scalar.NewFE(big.NewInt(0))
		c, _, err := Encrypt(pk, m, ctx)
		Expect(err).Should(BeNil())
		got, err := Decrypt(sk, c, ctx)
		Expect(err).Should(BeNil())
		Expect(got.Int().Cmp(m.Int())).Should(Equal(0))
	})

	It("EvalSum adds plaintexts homomorphically", func() {
		m1 := scalar.NewFE(big.NewInt(111))
		m2 := scalar.NewFE(big.NewInt(222))
		c1, _, err := Encrypt(pk, m1, ctx)
		Expect(err).Should(BeNil())
		c2, _, err := Encrypt(pk, m2, ctx)
		Expect(err).Should(BeNil())

		summed, err := EvalSum(c1, c2, ctx)
		Expect(err).Should(BeNil())

		got, err := Decrypt(sk, summed, ctx)
		Expect(err).Should(BeNil())
		want := new(big.Int).Add(m1.Int(), m2.Int())
		Expect(got.Int().Cmp(want)).Should(Equal(0))
	})

	It("EvalScal multiplies the plaintext by a public scalar", func() {
		m := scalar.NewFE(big.NewInt(17))
		k := big.NewInt(5)
		c, _, err := Encrypt(pk, m, ctx)
		Expect(err).Should(BeNil())

		scaled, err := EvalScal(c, k, ctx)
		Expect(err).Should(BeNil())

		got, err := Decrypt(sk, scaled, ctx)
		Expect(err).Should(BeNil())
		want := new(big.Int).Mul(m.Int(), k)
		Expect(got.Int().Cmp(want)).Should(Equal(0))
	})

	It("EncryptWithoutR composed with a fresh Encrypt(0) still decrypts correctly", func() {
		m := scalar.NewFE(big.NewInt(999))
		bare, _, err := EncryptWithoutR(group, m, ctx)
		Expect(err).Should(BeNil())

		blind, _, err := Encrypt(pk, scalar.NewFE(big.NewInt(0)), ctx)
		Expect(err).Should(BeNil())

		randomized, err := EvalSum(bare, blind, ctx)
		Expect(err).Should(BeNil())

		got, err := Decrypt(sk, randomized, ctx)
		Expect(err).Should(BeNil())
		Expect(got.Int().Cmp(m.Int())).Should(Equal(0))
	})

	It("produces and verifies an EncryptionProof", func() {
		m := scalar.NewFE(big.NewInt(55))
		c, r, err := Encrypt(pk, m, ctx)
		Expect(err).Should(BeNil())

		proof, err := Prove(pk, c, m, r, ctx)
		Expect(err).Should(BeNil())

		err = Verify(pk, c, proof, ctx)
		Expect(err).Should(BeNil())
	})

	It("rejects an EncryptionProof against the wrong ciphertext", func() {
		m := scalar.NewFE(big.NewInt(55))
		c, r, err := Encrypt(pk, m, ctx)
		Expect(err).Should(BeNil())
		proof, err := Prove(pk, c, m, r, ctx)
		Expect(err).Should(BeNil())

		other, _, err := Encrypt(pk, scalar.NewFE(big.NewInt(56)), ctx)
		Expect(err).Should(BeNil())

		err = Verify(pk, other, proof, ctx)
		Expect(err).Should(Equal(ErrFailedVerify))
	})

	Context("wire round-trip", func() {
		It("MarshalBinary/UnmarshalCiphertextBinary preserves a ciphertext", func() {
			m := scalar.NewFE(big.NewInt(777))
			c, _, err := Encrypt(pk, m, ctx)
			Expect(err).Should(BeNil())

			data, err := c.MarshalBinary()
			Expect(err).Should(BeNil())
			got, err := UnmarshalCiphertextBinary(data)
			Expect(err).Should(BeNil())

			decrypted, err := Decrypt(sk, got, ctx)
			Expect(err).Should(BeNil())
			Expect(decrypted.Int().Cmp(m.Int())).Should(Equal(0))
		})
	})
})

func TestCL(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CL Suite")
}
