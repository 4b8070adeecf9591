// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdscript

import (
	"bytes"
	"testing"

	"github.com/creativecoin/crvd/txscript"
)

func mustMultiSigScript(t *testing.T, threshold int, pubKeys ...[]byte) []byte {
	t.Helper()
	script, err := MultiSigScriptV0(threshold, pubKeys...)
	if err != nil {
		t.Fatalf("MultiSigScriptV0: %v", err)
	}
	return script
}

func compressedPubKey(prefix byte) []byte {
	pk := make([]byte, 33)
	pk[0] = prefix
	return pk
}

func TestExtractCompressedPubKeyV0(t *testing.T) {
	pubKey := compressedPubKey(0x02)
	script := append([]byte{txscript.OP_DATA_33}, pubKey...)
	script = append(script, txscript.OP_CHECKSIG)

	got := ExtractCompressedPubKeyV0(script)
	if !bytes.Equal(got, pubKey) {
		t.Fatalf("ExtractCompressedPubKeyV0 = %x, want %x", got, pubKey)
	}
	if !IsPubKeyScriptV0(script) {
		t.Fatal("IsPubKeyScriptV0 = false, want true")
	}
	if DetermineScriptTypeV0(script) != STPubKeyEcdsaSecp256k1 {
		t.Fatalf("DetermineScriptTypeV0 = %v, want STPubKeyEcdsaSecp256k1",
			DetermineScriptTypeV0(script))
	}
}

func TestExtractPubKeyHashV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0xab}, 20)
	script := append([]byte{txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20}, hash...)
	script = append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)

	got := ExtractPubKeyHashV0(script)
	if !bytes.Equal(got, hash) {
		t.Fatalf("ExtractPubKeyHashV0 = %x, want %x", got, hash)
	}
	if !IsPubKeyHashScriptV0(script) {
		t.Fatal("IsPubKeyHashScriptV0 = false, want true")
	}
	if DetermineRequiredSigsV0(script) != 1 {
		t.Fatalf("DetermineRequiredSigsV0 = %d, want 1", DetermineRequiredSigsV0(script))
	}
}

func TestExtractScriptHashV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0xcd}, 20)
	script := append([]byte{txscript.OP_HASH160, txscript.OP_DATA_20}, hash...)
	script = append(script, txscript.OP_EQUAL)

	got := ExtractScriptHashV0(script)
	if !bytes.Equal(got, hash) {
		t.Fatalf("ExtractScriptHashV0 = %x, want %x", got, hash)
	}
	if DetermineScriptTypeV0(script) != STScriptHash {
		t.Fatalf("DetermineScriptTypeV0 = %v, want STScriptHash", DetermineScriptTypeV0(script))
	}
}

func TestMultiSigScriptV0RoundTrip(t *testing.T) {
	pk1, pk2, pk3 := compressedPubKey(0x02), compressedPubKey(0x03), compressedPubKey(0x02)
	script := mustMultiSigScript(t, 2, pk1, pk2, pk3)

	if !IsMultiSigScriptV0(script) {
		t.Fatal("IsMultiSigScriptV0 = false, want true")
	}

	details := ExtractMultiSigScriptDetailsV0(script, true)
	if !details.Valid {
		t.Fatal("extracted multisig details not valid")
	}
	if details.RequiredSigs != 2 || details.NumPubKeys != 3 {
		t.Fatalf("RequiredSigs=%d NumPubKeys=%d, want 2, 3",
			details.RequiredSigs, details.NumPubKeys)
	}
	if DetermineRequiredSigsV0(script) != 2 {
		t.Fatalf("DetermineRequiredSigsV0 = %d, want 2", DetermineRequiredSigsV0(script))
	}
}

func TestMultiSigScriptV0TooManyRequiredSigs(t *testing.T) {
	_, err := MultiSigScriptV0(2, compressedPubKey(0x02))
	if err == nil {
		t.Fatal("expected error for threshold exceeding number of keys")
	}
}

func TestMultiSigScriptV0BadPubKeyType(t *testing.T) {
	uncompressed := make([]byte, 65)
	uncompressed[0] = 0x04
	_, err := MultiSigScriptV0(1, uncompressed)
	if err == nil {
		t.Fatal("expected error for non-compressed public key")
	}
}

func TestIsMultiSigSigScriptV0(t *testing.T) {
	redeem := mustMultiSigScript(t, 1, compressedPubKey(0x02))

	builder := txscript.NewScriptBuilder()
	sigScript, err := builder.AddData(redeem).Script()
	if err != nil {
		t.Fatalf("building sig script: %v", err)
	}

	if !IsMultiSigSigScriptV0(sigScript) {
		t.Fatal("IsMultiSigSigScriptV0 = false, want true")
	}

	redeemBack := MultiSigRedeemScriptFromScriptSigV0(sigScript)
	if !bytes.Equal(redeemBack, redeem) {
		t.Fatalf("MultiSigRedeemScriptFromScriptSigV0 = %x, want %x", redeemBack, redeem)
	}
}

func TestNullDataScriptV0(t *testing.T) {
	data := []byte("creativecoin")
	script, err := ProvablyPruneableScriptV0(data)
	if err != nil {
		t.Fatalf("ProvablyPruneableScriptV0: %v", err)
	}

	if !IsNullDataScriptV0(script) {
		t.Fatal("IsNullDataScriptV0 = false, want true")
	}
	if DetermineScriptTypeV0(script) != STNullData {
		t.Fatalf("DetermineScriptTypeV0 = %v, want STNullData", DetermineScriptTypeV0(script))
	}
}

func TestNullDataScriptV0TooMuchData(t *testing.T) {
	_, err := ProvablyPruneableScriptV0(bytes.Repeat([]byte{0x01}, MaxDataCarrierSizeV0+1))
	if err == nil {
		t.Fatal("expected error for oversize null data")
	}
}

func TestDetermineScriptTypeV0NonStandard(t *testing.T) {
	if got := DetermineScriptTypeV0([]byte{0xff, 0xff}); got != STNonStandard {
		t.Fatalf("DetermineScriptTypeV0 = %v, want STNonStandard", got)
	}
}

func TestScriptTypeString(t *testing.T) {
	if STScriptHash.String() != "scripthash" {
		t.Fatalf("STScriptHash.String() = %q, want %q", STScriptHash.String(), "scripthash")
	}
	if ScriptType(255).String() != "invalid" {
		t.Fatalf("out-of-range ScriptType.String() = %q, want %q",
			ScriptType(255).String(), "invalid")
	}
}
