package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/samber/lo"
	"github.com/spkg/bom"

	"github.com/xmdhs/go-cryptopals/aes"
	"github.com/xmdhs/go-cryptopals/base64"
	"github.com/xmdhs/go-cryptopals/config"
	"github.com/xmdhs/go-cryptopals/hex"
	"github.com/xmdhs/go-cryptopals/logger"
	"github.com/xmdhs/go-cryptopals/text"
	"github.com/xmdhs/go-cryptopals/xor"
)

var version = "unversioned"

func main() {
	flaggy.SetName("go-cryptopals")
	flaggy.SetDescription("AES and XOR tooling built from first principles")
	flaggy.SetVersion(version)

	b64 := newBase64Cmd()
	xorc := newXORCmd()
	guess := newGuessKeyCmd()
	brk := newBreakXORCmd()
	aesc := newAESCmd()

	flaggy.AttachSubcommand(b64.Subcommand, 1)
	flaggy.AttachSubcommand(xorc.Subcommand, 1)
	flaggy.AttachSubcommand(guess.Subcommand, 1)
	flaggy.AttachSubcommand(brk.Subcommand, 1)
	flaggy.AttachSubcommand(aesc.Subcommand, 1)

	flaggy.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	logger.Init(cfg.LogLevel)

	switch {
	case b64.Used:
		err = b64.run()
	case xorc.Used:
		err = xorc.run()
	case guess.Used:
		err = guess.run(cfg)
	case brk.Used:
		err = brk.run(cfg)
	case aesc.Used:
		err = aesc.run()
	default:
		flaggy.ShowHelpAndExit("no command given")
	}

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	logger.GetLogger().Debug(errors.Wrap(err, 0).ErrorStack())
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	os.Exit(1)
}

// readFile reads a file and strips a leading byte order mark.
func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bom.Clean(content), nil
}

func readStdinLine() (string, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bom.Clean(content))), nil
}

type base64Cmd struct {
	*flaggy.Subcommand
	hexData bool
	decode  bool
	input   string
}

func newBase64Cmd() *base64Cmd {
	c := &base64Cmd{Subcommand: flaggy.NewSubcommand("base64")}
	c.Description = "Base64 encode the given input, or stdin"
	c.Bool(&c.hexData, "x", "hex", "assume input is hex data")
	c.Bool(&c.decode, "d", "decode", "decode base64 instead of encoding")
	c.AddPositionalValue(&c.input, "input", 1, false, "the input to convert; stdin is read when absent")
	return c
}

func (c *base64Cmd) run() error {
	input := c.input
	if input == "" {
		var err error
		if input, err = readStdinLine(); err != nil {
			return err
		}
	}

	if c.decode {
		raw, err := base64.DecodeString(input)
		if err != nil {
			return err
		}
		if c.hexData {
			fmt.Println(hex.EncodeToString(raw))
		} else {
			fmt.Println(string(raw))
		}
		return nil
	}

	data := []byte(input)
	if c.hexData {
		var err error
		if data, err = hex.DecodeString(input); err != nil {
			return err
		}
	}
	fmt.Println(base64.EncodeToString(data))
	return nil
}

type xorCmd struct {
	*flaggy.Subcommand
	key   string
	file  string
	input string
}

func newXORCmd() *xorCmd {
	c := &xorCmd{Subcommand: flaggy.NewSubcommand("xor")}
	c.Description = "XOR the input with a repeating key"
	c.String(&c.key, "k", "key", "the key to xor with")
	c.String(&c.file, "f", "file", "a path to the file to read")
	c.AddPositionalValue(&c.input, "input", 1, false, "the input to xor")
	return c
}

func (c *xorCmd) run() error {
	if c.key == "" {
		return errors.Errorf("xor needs a non-empty --key")
	}

	data := []byte(c.input)
	if c.file != "" {
		var err error
		if data, err = readFile(c.file); err != nil {
			return err
		}
	}

	fmt.Println(string(xor.Repeating(data, []byte(c.key))))
	return nil
}

type guessKeyCmd struct {
	*flaggy.Subcommand
	file  string
	input string
}

func newGuessKeyCmd() *guessKeyCmd {
	c := &guessKeyCmd{Subcommand: flaggy.NewSubcommand("guess-key")}
	c.Description = "Guess the single-byte XOR key behind hex input"
	c.String(&c.file, "f", "file", "a path to a file of hex strings, one per line")
	c.AddPositionalValue(&c.input, "input", 1, false, "the hex input to crack")
	return c
}

func (c *guessKeyCmd) run(cfg config.Config) error {
	if c.file != "" {
		return c.runFile(cfg)
	}
	if c.input == "" {
		return errors.Errorf("guess-key needs hex input or a --file")
	}

	input, err := hex.DecodeString(c.input)
	if err != nil {
		return err
	}

	candidates := xor.GuessSingleKey(input, text.ScoreEnglish, cfg.GuessKey.Candidates)
	if len(candidates) == 0 {
		return errors.Errorf("no candidate decodes to printable text")
	}

	rows := lo.Map(candidates, func(cand xor.Candidate, _ int) string {
		return fmt.Sprintf("| score %08d | key %s | %s",
			cand.Score, color.YellowString("0x%02x", cand.Key), cand.Text)
	})
	fmt.Println(strings.Join(rows, "\n"))
	return nil
}

type lineCandidate struct {
	lineNr    int
	line      string
	candidate xor.Candidate
}

// runFile treats every line of the file as its own hex-encoded
// ciphertext and reports the most promising lines.
func (c *guessKeyCmd) runFile(cfg config.Config) error {
	content, err := readFile(c.file)
	if err != nil {
		return err
	}

	var positions []lineCandidate
	for lineNr, line := range strings.Split(strings.TrimRight(string(content), "\n"), "\n") {
		input, err := hex.DecodeString(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNr, err)
		}

		best := xor.GuessSingleKey(input, text.ScoreEnglish, 1)
		if len(best) == 0 {
			continue
		}
		positions = append(positions, lineCandidate{
			lineNr:    lineNr,
			line:      line,
			candidate: best[0],
		})
	}

	slices.SortStableFunc(positions, func(a, b lineCandidate) int {
		return cmp.Compare(b.candidate.Score, a.candidate.Score)
	})
	if len(positions) > cfg.GuessKey.Candidates {
		positions = positions[:cfg.GuessKey.Candidates]
	}

	fmt.Printf("%d best candidates:\n", cfg.GuessKey.Candidates)
	for _, p := range positions {
		fmt.Printf("| score %08d | line %03d | key %s | %s | %s\n",
			p.candidate.Score, p.lineNr,
			color.YellowString("0x%02x", p.candidate.Key),
			p.line, p.candidate.Text)
	}
	return nil
}

type breakXORCmd struct {
	*flaggy.Subcommand
	file string
}

func newBreakXORCmd() *breakXORCmd {
	c := &breakXORCmd{Subcommand: flaggy.NewSubcommand("break-xor")}
	c.Description = "Recover a repeating XOR key from a base64 file"
	c.String(&c.file, "f", "file", "a path to the file to read")
	return c
}

func (c *breakXORCmd) run(cfg config.Config) error {
	if c.file == "" {
		return errors.Errorf("break-xor needs a --file to analyze")
	}

	content, err := readFile(c.file)
	if err != nil {
		return err
	}
	data, err := base64.DecodeString(string(content))
	if err != nil {
		return err
	}

	b := cfg.BreakXOR
	sizes, err := xor.RankKeySizes(data, b.MinKeySize, b.MaxKeySize, b.ChunkPairs)
	if err != nil {
		return err
	}
	sizes = sizes[:min(len(sizes), b.TryKeySizes)]

	fmt.Println("most promising keysize candidates:")
	for _, s := range sizes {
		fmt.Printf("keysize %d (distance %.2f)\n", s.KeySize, s.Distance)
	}

	log := logger.GetLogger()
	for _, s := range sizes {
		fmt.Println(strings.Repeat("=", 100))
		fmt.Printf("trying keysize %d\n", s.KeySize)

		key, err := xor.RecoverKey(data, s.KeySize, text.ScoreEnglish)
		if err != nil {
			log.Warnf("keysize %d: %v", s.KeySize, err)
			continue
		}

		fmt.Printf("key %s looks good\n", color.YellowString("%s", key))
		fmt.Println(strings.Repeat(".", 100))

		clear := xor.Repeating(data, key)
		if len(clear) > b.PreviewBytes {
			clear = clear[:b.PreviewBytes]
		}
		fmt.Println(string(clear))
	}
	return nil
}

type aesCmd struct {
	*flaggy.Subcommand
	key      string
	file     string
	encoding string
	mode     string
	decrypt  bool
	encrypt  bool
}

func newAESCmd() *aesCmd {
	c := &aesCmd{Subcommand: flaggy.NewSubcommand("aes")}
	c.Description = "AES-128 encrypt or decrypt a file"
	c.encoding = "base64"
	c.mode = "ecb"
	c.String(&c.key, "k", "key", "the 16 byte key")
	c.String(&c.file, "f", "file", "a path to the file to read")
	c.String(&c.encoding, "e", "encoding", "ciphertext encoding: base64 or hex")
	c.String(&c.mode, "m", "mode", "block mode, only ecb is supported")
	c.Bool(&c.decrypt, "d", "decrypt", "decrypt the file (the default)")
	c.Bool(&c.encrypt, "", "encrypt", "encrypt the file")
	return c
}

func (c *aesCmd) run() error {
	if c.file == "" {
		return errors.Errorf("aes needs a --file to work on")
	}
	if c.decrypt && c.encrypt {
		return errors.Errorf("--decrypt and --encrypt are mutually exclusive")
	}
	if c.mode != "ecb" {
		return errors.Errorf("unsupported mode %q, only ecb is available", c.mode)
	}
	if c.encoding != "base64" && c.encoding != "hex" {
		return errors.Errorf("unsupported encoding %q, use base64 or hex", c.encoding)
	}

	cipher, err := aes.NewCipher([]byte(c.key))
	if err != nil {
		return err
	}

	content, err := readFile(c.file)
	if err != nil {
		return err
	}

	if c.encrypt {
		encrypted, err := cipher.EncryptECB(content)
		if err != nil {
			return err
		}
		if c.encoding == "hex" {
			fmt.Println(hex.EncodeToString(encrypted))
		} else {
			fmt.Println(base64.EncodeToString(encrypted))
		}
		return nil
	}

	var data []byte
	if c.encoding == "hex" {
		data, err = hex.DecodeString(strings.TrimSpace(string(content)))
	} else {
		data, err = base64.DecodeString(string(content))
	}
	if err != nil {
		return err
	}

	decrypted, err := cipher.DecryptECB(data)
	if err != nil {
		return err
	}
	fmt.Println(string(decrypted))
	return nil
}
