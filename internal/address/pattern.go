package address

// Pattern constrains an encoded address by literal prefix and/or suffix
// bytes. A zero-length side is satisfied by any address.
type Pattern struct {
	Prefix        []byte
	Suffix        []byte
	CaseSensitive bool
}

// Empty reports whether the pattern constrains nothing.
func (p Pattern) Empty() bool {
	return len(p.Prefix) == 0 && len(p.Suffix) == 0
}

// Matches reports whether addr satisfies both the prefix and suffix
// constraints. addr may be a fixed-size buffer with a trailing NUL
// terminator; its effective length is found by terminator scan.
func (p Pattern) Matches(addr []byte) bool {
	return p.startsWith(addr) && p.endsWith(addr)
}

func (p Pattern) startsWith(addr []byte) bool {
	if len(p.Prefix) == 0 {
		return true
	}
	if len(p.Prefix) > addrLen(addr) {
		return false
	}
	for i, want := range p.Prefix {
		if !p.eq(addr[i], want) {
			return false
		}
	}
	return true
}

func (p Pattern) endsWith(addr []byte) bool {
	if len(p.Suffix) == 0 {
		return true
	}
	n := addrLen(addr)
	if len(p.Suffix) > n {
		return false
	}
	off := n - len(p.Suffix)
	for i, want := range p.Suffix {
		if !p.eq(addr[off+i], want) {
			return false
		}
	}
	return true
}

func (p Pattern) eq(a, b byte) bool {
	if p.CaseSensitive {
		return a == b
	}
	return foldUpper(a) == foldUpper(b)
}

// foldUpper folds ASCII letters to uppercase; other bytes pass through.
func foldUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// addrLen finds the effective address length by scanning for the first
// NUL terminator.
func addrLen(addr []byte) int {
	for i, b := range addr {
		if b == 0 {
			return i
		}
	}
	return len(addr)
}
