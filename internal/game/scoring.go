package game

// Score compares guess against secret. Used-sets are keyed by color, not by
// position: the secret never repeats a color, so each secret color can feed
// at most one match. Malformed guesses are scored as-is.
func Score(secret, guess Code) Feedback {
	var f Feedback
	var usedS, usedG [256]bool

	n := min(len(secret), len(guess))

	// exact
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			f.Exact++
			usedS[secret[i]] = true
			usedG[guess[i]] = true
		}
	}

	// misplaced
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			continue
		}
		c := guess[i]
		if usedG[c] {
			continue
		}
		for j := range secret {
			if secret[j] == c && !usedS[c] {
				f.Misplaced++
				usedS[c] = true
				usedG[c] = true
				break
			}
		}
	}

	return f
}
