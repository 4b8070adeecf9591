// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certgen_test

import (
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/creativecoin/crvd/certgen"
)

// TestNewTLSCertPair ensures the NewTLSCertPair function works as expected.
func TestNewTLSCertPair(t *testing.T) {
	// Certs don't support sub-second precision, so truncate it now to
	// ensure the checks later don't fail due to nanosecond precision
	// differences.
	validUntil := time.Unix(time.Now().Add(10*365*24*time.Hour).Unix(), 0)
	org := "test autogenerated cert"
	extraHosts := []string{"testtlscert.bogus", "127.0.0.1"}
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, extraHosts)
	if err != nil {
		t.Fatalf("failed with unexpected error: %v", err)
	}

	pemCert, _ := pem.Decode(cert)
	if pemCert == nil {
		t.Fatal("pem.Decode was unable to decode the certificate")
	}

	pemKey, _ := pem.Decode(key)
	if pemKey == nil {
		t.Fatal("pem.Decode was unable to decode the key")
	}

	if _, err := x509.ParseECPrivateKey(pemKey.Bytes); err != nil {
		t.Fatalf("failed with unexpected error: %v", err)
	}

	x509Cert, err := x509.ParseCertificate(pemCert.Bytes)
	if err != nil {
		t.Fatalf("failed with unexpected error: %v", err)
	}

	x509Orgs := x509Cert.Subject.Organization
	if len(x509Orgs) == 0 || x509Orgs[0] != org {
		t.Fatalf("generated cert organization field mismatch, got %v, want %v",
			x509Orgs, org)
	}

	if !x509Cert.NotAfter.Equal(validUntil) {
		t.Fatalf("generated cert valid until field mismatch, got %v, want %v",
			x509Cert.NotAfter, validUntil)
	}

	for _, host := range extraHosts {
		if err := x509Cert.VerifyHostname(host); err != nil {
			t.Fatalf("failed to verify extra host %q: %v", host, err)
		}
	}

	hostCounts := make(map[string]int)
	for _, host := range x509Cert.DNSNames {
		hostCounts[host]++
	}
	for host, count := range hostCounts {
		if count != 1 {
			t.Errorf("host %s appears %d times in certificate", host, count)
		}
	}
}
