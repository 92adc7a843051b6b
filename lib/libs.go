/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package lib

// Libraries raised by this reimplementation.
const (
	// SSL is ERR_LIB_SSL: failures detected by this TLS layer itself,
	// such as null arguments, unsupported features or caught panics.
	SSL Lib = 20

	// User is ERR_LIB_USER: failures wrapped from the TLS engine or from
	// I/O. The original error text travels as the record's data string.
	User Lib = 128
)

// Other registry entries. They are never raised here but appear on the
// shared queue when it is populated by the rest of the process, so the
// error string renderer needs their names.
const (
	None    Lib = 1
	Sys     Lib = 2
	BN      Lib = 3
	RSA     Lib = 4
	DH      Lib = 5
	EVP     Lib = 6
	Buf     Lib = 7
	Obj     Lib = 8
	PEM     Lib = 9
	DSA     Lib = 10
	X509    Lib = 11
	ASN1    Lib = 13
	Conf    Lib = 14
	Crypto  Lib = 15
	EC      Lib = 16
	BIO     Lib = 32
	PKCS7   Lib = 33
	X509V3  Lib = 34
	PKCS12  Lib = 35
	Rand    Lib = 36
	DSO     Lib = 37
	Engine  Lib = 38
	OCSP    Lib = 39
	UI      Lib = 40
	CMS     Lib = 46
	HMAC    Lib = 48
	CT      Lib = 50
	Async   Lib = 51
	KDF     Lib = 52
	Prov    Lib = 57
	HTTPLib Lib = 61
)

type descriptor struct {
	name string
	text string
}

var catalog = map[Lib]descriptor{
	None:    {"NONE", "unknown library"},
	Sys:     {"SYS", "system library"},
	BN:      {"BN", "bignum routines"},
	RSA:     {"RSA", "rsa routines"},
	DH:      {"DH", "Diffie-Hellman routines"},
	EVP:     {"EVP", "digital envelope routines"},
	Buf:     {"BUF", "memory buffer routines"},
	Obj:     {"OBJ", "object identifier routines"},
	PEM:     {"PEM", "PEM routines"},
	DSA:     {"DSA", "dsa routines"},
	X509:    {"X509", "x509 certificate routines"},
	ASN1:    {"ASN1", "asn1 encoding routines"},
	Conf:    {"CONF", "configuration file routines"},
	Crypto:  {"CRYPTO", "common libcrypto routines"},
	EC:      {"EC", "elliptic curve routines"},
	SSL:     {"SSL", "SSL routines"},
	BIO:     {"BIO", "BIO routines"},
	PKCS7:   {"PKCS7", "PKCS7 routines"},
	X509V3:  {"X509V3", "X509 V3 routines"},
	PKCS12:  {"PKCS12", "PKCS12 routines"},
	Rand:    {"RAND", "random number generator"},
	DSO:     {"DSO", "DSO support routines"},
	Engine:  {"ENGINE", "engine routines"},
	OCSP:    {"OCSP", "OCSP routines"},
	UI:      {"UI", "UI routines"},
	CMS:     {"CMS", "CMS routines"},
	HMAC:    {"HMAC", "HMAC routines"},
	CT:      {"CT", "CT routines"},
	Async:   {"ASYNC", "ASYNC routines"},
	KDF:     {"KDF", "KDF routines"},
	Prov:    {"PROV", "Provider routines"},
	HTTPLib: {"HTTP", "HTTP routines"},
	User:    {"USER", "user library"},
}

var byName = func() map[string]Lib {
	m := make(map[string]Lib, len(catalog))
	for l, d := range catalog {
		m[d.name] = l
	}
	return m
}()
