package tinkperm

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/prf"
	commonpb "github.com/google/tink/go/proto/common_go_proto"
	hmacpb "github.com/google/tink/go/proto/hmac_prf_go_proto"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	// HMACPRFKeyTypeURL is the type URL of Tink's HMAC PRF keys.
	HMACPRFKeyTypeURL = "type.googleapis.com/google.crypto.tink.HmacPrfKey"

	// minKeySize is the smallest raw key Tink's HMAC PRF accepts.
	minKeySize = 16
)

// KeyTemplate returns the recommended template for Permuter keys:
// HMAC-SHA256 PRF with a 32-byte key.
//
//	handle, err := keyset.NewHandle(tinkperm.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	return prf.HMACSHA256PRFKeyTemplate()
}

// KeyTemplateHMACSHA512 returns an HMAC-SHA512 PRF template with a 64-byte key.
func KeyTemplateHMACSHA512() *tinkpb.KeyTemplate {
	return prf.HMACSHA512PRFKeyTemplate()
}

// KeyTemplateAESCMAC returns an AES-CMAC PRF template with a 32-byte key.
// AES-CMAC yields at most 16 bytes per call, which is the block size
// Permuter requests.
func KeyTemplateAESCMAC() *tinkpb.KeyTemplate {
	return prf.AESCMACPRFKeyTemplate()
}

// NewKeysetHandleFromKey creates a keyset handle from a raw key (e.g., from
// an HSM or a config file). The key becomes a single HMAC-SHA256 PRF key and
// must be at least 16 bytes.
//
// Note: This creates an unencrypted keyset. In production, consider
// encrypting the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) < minKeySize {
		return nil, fmt.Errorf("key too short: %d bytes (minimum %d)", len(key), minKeySize)
	}

	serialized, err := proto.Marshal(&hmacpb.HmacPrfKey{
		Version: 0,
		Params: &hmacpb.HmacPrfParams{
			Hash: commonpb.HashType_SHA256,
		},
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	// Generate a unique key ID
	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         HMACPRFKeyTypeURL,
				Value:           serialized,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}
