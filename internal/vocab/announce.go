package vocab

import "fmt"

// ScoreSequence returns the clips to play, in order, to announce a score
// between 1 and 999: the hundreds clip, the connector when both parts are
// present, then the tens/teens/ones clips.
func ScoreSequence(score int) ([]Entry, error) {
	if score < 1 || score > 999 {
		return nil, fmt.Errorf("score %d out of range [1, 999]", score)
	}

	hundreds := (score / 100) * 100
	remainder := score % 100
	tens := (remainder / 10) * 10
	ones := remainder % 10

	var seq []Entry
	if hundreds > 0 {
		seq = append(seq, mustEntry(hundreds))
	}
	if hundreds > 0 && remainder > 0 {
		seq = append(seq, mustEntry(KeyAnd))
	}

	switch {
	case remainder >= 20:
		seq = append(seq, mustEntry(tens))
		if ones > 0 {
			seq = append(seq, mustEntry(ones))
		}
	case remainder >= 10:
		// Teens have their own clips.
		seq = append(seq, mustEntry(remainder))
	case ones > 0:
		seq = append(seq, mustEntry(ones))
	}

	return seq, nil
}

func mustEntry(key int) Entry {
	for _, e := range entries {
		if e.Key == key {
			return e
		}
	}
	panic(fmt.Sprintf("vocab: no entry for key %d", key))
}
