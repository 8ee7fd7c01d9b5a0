package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/gowebpki/jcs"

	"github.com/ibet-fin/ibet-indexer/internal/api/apierrors"
)

// SignatureHeader carries the hex-encoded secp256k1 signature of the request
const SignatureHeader = "X-ibet-Signature"

// SIGNER_ADDRESS_KEY is the gin context key holding the recovered signer
// address. Handlers treat it as the authenticated request address.
const SIGNER_ADDRESS_KEY contextKey = "signer_address"

// SignerAddress returns the address recovered by the Signature middleware,
// "" when the request was not signed
func SignerAddress(c *gin.Context) string {
	return c.GetString(SIGNER_ADDRESS_KEY)
}

// Signature returns a gin middleware that verifies the request signature and
// stores the recovered signer address in the context. The signed message is
//
//	METHOD \n PATH \n ("?" + sorted query | "") \n keccak256(canonical body)
//
// where an absent body canonicalizes as {}. Recovery uses the EIP-191
// personal-message prefix, so wallet SDK signMessage output verifies as-is.
func Signature() gin.HandlerFunc {
	return func(c *gin.Context) {
		sigHex := c.GetHeader(SignatureHeader)
		if sigHex == "" {
			abortInvalidSignature(c, "missing "+SignatureHeader+" header")
			return
		}

		body, err := readBody(c)
		if err != nil {
			abortInvalidSignature(c, "failed to read request body")
			return
		}

		message, err := CanonicalMessage(c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery, body)
		if err != nil {
			abortInvalidSignature(c, "failed to canonicalize request")
			return
		}

		address, err := RecoverSigner(message, sigHex)
		if err != nil {
			abortInvalidSignature(c, "signature verification failed")
			return
		}

		c.Set(SIGNER_ADDRESS_KEY, address)
		c.Next()
	}
}

// CanonicalMessage builds the message the client signs
func CanonicalMessage(method, path, rawQuery string, body []byte) (string, error) {
	query, err := sortedQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("failed to parse query: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	canonical, err := jcs.Transform(body)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize body: %w", err)
	}

	digest := hexutil.Encode(crypto.Keccak256(canonical))
	return strings.Join([]string{method, path, query, digest}, "\n"), nil
}

// RecoverSigner recovers the EIP-191 signer address from a hex signature
func RecoverSigner(message, sigHex string) (string, error) {
	sig, err := hexutil.Decode(withHexPrefix(sigHex))
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", errors.New("invalid signature length")
	}

	// Wallets emit V as 27/28, crypto.SigToPub wants 0/1
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = bytes.Clone(sig)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

func sortedQuery(rawQuery string) (string, error) {
	if rawQuery == "" {
		return "", nil
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", err
	}
	for _, vs := range values {
		sort.Strings(vs)
	}

	// url.Values.Encode sorts by key
	return "?" + values.Encode(), nil
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	// Restore the body so handlers can bind it
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func withHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}

func abortInvalidSignature(c *gin.Context, description string) {
	apiErr := apierrors.NewInvalidParameter(description)
	c.AbortWithStatusJSON(apiErr.HTTPStatus, apiErr.Envelope())
}
