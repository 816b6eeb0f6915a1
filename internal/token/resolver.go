package token

// Resolver extracts the acting user id from a presented token. This is
// the sole authorization gate in front of message reads and writes.
type Resolver struct {
	codec *Codec
}

func NewResolver(codec *Codec) *Resolver {
	return &Resolver{codec: codec}
}

// ResolveUserID decodes the token and returns its userId claim. Decode
// failures propagate unchanged.
func (r *Resolver) ResolveUserID(tokenString string) (string, error) {
	claims, err := r.codec.Decode(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
