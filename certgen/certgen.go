// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certgen contains functions for creating self-signed TLS
// certificates, used by the RPC server to secure its listener when no
// certificate is supplied on the command line.
package certgen

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"
)

// NewTLSCertPair returns a new PEM-encoded x.509 certificate pair based on
// a 256-bit ECDSA private key. The certificate is self-signed and will
// include extra alternate hosts/IPs in the Subject Alternative Name (SAN)
// list in addition to localhost and any local interface addresses.
func NewTLSCertPair(organization string, validUntil time.Time, extraHosts []string) (cert, key []byte, err error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to generate private key: %w", err)
	}

	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to generate serial number: %w", err)
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	dnsNames := []string{host}
	if host != "localhost" {
		dnsNames = append(dnsNames, "localhost")
	}
	ipAddresses := []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}

	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ipAddresses = appendUniqueIP(ipAddresses, ipNet.IP)
		}
	}

	for _, h := range extraHosts {
		if ip := net.ParseIP(h); ip != nil {
			ipAddresses = appendUniqueIP(ipAddresses, ip)
			continue
		}
		dnsNames = appendUniqueHost(dnsNames, h)
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{organization},
			CommonName:   host,
		},
		NotBefore: time.Now().Add(-time.Hour * 24),
		NotAfter:  validUntil,

		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		DNSNames:              dnsNames,
		IPAddresses:           ipAddresses,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to create certificate: %w", err)
	}

	certBuf, err := pemEncode("CERTIFICATE", derBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to encode certificate: %w", err)
	}

	keyBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to marshal private key: %w", err)
	}
	keyBuf, err := pemEncode("EC PRIVATE KEY", keyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("certgen: failed to encode private key: %w", err)
	}

	return certBuf, keyBuf, nil
}

func pemEncode(blockType string, der []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := pem.Encode(&buf, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// appendUniqueIP appends ip to ips if it is not already present.
func appendUniqueIP(ips []net.IP, ip net.IP) []net.IP {
	for _, existing := range ips {
		if existing.Equal(ip) {
			return ips
		}
	}
	return append(ips, ip)
}

// appendUniqueHost appends host to hosts if it is not already present.
func appendUniqueHost(hosts []string, host string) []string {
	for _, existing := range hosts {
		if existing == host {
			return hosts
		}
	}
	return append(hosts, host)
}
