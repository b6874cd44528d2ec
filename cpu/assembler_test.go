package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%d", MEMORY_SIZE), asm.Equate["MEMORY_SIZE"])
	assert.Equal(fmt.Sprintf("%#x", SP_INIT), asm.Equate["SP_INIT"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerPrint8(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; print8.ls8",
		"LDI R0,8",
		"  prn r0   ; lower case is fine",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{2, 0, []string{"LDI", "R0", "8"}, []byte{0x82, 0x00, 0x08}, ""},
		{3, 3, []string{"prn", "r0"}, []byte{0x47, 0x00}, ""},
		{4, 5, []string{"HLT"}, []byte{0x01}, ""},
	}

	opEqual(t, expected, prog.Opcodes)
	assert.Equal([]byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())
}

func TestAssemblerAlu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"LDI R0,5",
		"LDI R1,3",
		"MUL R0,R1",
		"ADD R0 R1",
		"SUB R0,R1",
		"PRN R0",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]byte{
		0x82, 0x00, 0x05,
		0x82, 0x01, 0x03,
		0xa2, 0x00, 0x01,
		0xa0, 0x00, 0x01,
		0xa1, 0x00, 0x01,
		0x47, 0x00,
		0x01,
	}, prog.Binary())
}

func TestAssemblerStack(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"PUSH R1",
		"POP R2",
		"LDI SP,SP_INIT",
		"RET",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]byte{
		0x45, 0x01,
		0x46, 0x02,
		0x82, 0x07, 0xf4,
		0x11,
	}, prog.Binary())
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".equ FIVE 5",
		"LDI R0,FIVE",
		"LDI R1,$(FIVE * 3)",
		"LDI R2,$(LINENO)",
		"LDI R3,'A'",
		"LDI R4,-1",
		"LDI R5,~0x0f",
		"LDI R6,$(MEMORY_SIZE - 1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(errors.Unwrap(err))
	}

	assert.Equal([]byte{
		0x82, 0x00, 5,
		0x82, 0x01, 15,
		0x82, 0x02, 4,
		0x82, 0x03, 'A',
		0x82, 0x04, 0xff,
		0x82, 0x05, 0xf0,
		0x82, 0x06, 0xff,
	}, prog.Binary())
	assert.Equal([]string{"LDI", "R0", "5"}, prog.Opcodes[0].Words)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("COUNT", "3")
	asm.Predefine("COUNT", "4")
	asm.Predefine("LIMIT", "$(COUNT * 2)")

	prog, err := asm.Parse(strings.NewReader("LDI R0,COUNT\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{0x82, 0x00, 4}, prog.Binary())
	assert.Equal("4", asm.Equate["COUNT"])
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro SETPRN rn value",
		"LDI rn,value",
		"PRN rn",
		".endm",
		"SETPRN R0 7",
		"SETPRN R1,$(7 * 2)",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, 0, []string{"LDI", "R0", "7"}, []byte{0x82, 0x00, 7}, ""},
		{3, 3, []string{"PRN", "R0"}, []byte{0x47, 0x00}, ""},
		{2, 5, []string{"LDI", "R1", "14"}, []byte{0x82, 0x01, 14}, ""},
		{3, 8, []string{"PRN", "R1"}, []byte{0x47, 0x01}, ""},
		{7, 10, []string{"HLT"}, []byte{0x01}, ""},
	}

	opEqual(t, expected, prog.Opcodes)

	// Macro arguments do not leak out of the expansion.
	_, ok := asm.Equate["rn"]
	assert.False(ok)
}

func TestAssemblerMacroLocalLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro SELF rn",
		"@here: LDI rn,@here",
		".endm",
		"SELF R0",
		"SELF R1",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{0x82, 0x00, 0x00, 0x82, 0x01, 0x03}, prog.Binary())
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"  LDI R1,Sub1",
		"  CALL R1",
		"  HLT",
		"Sub1: Also:",
		"  LDI R0,99",
		"  PRN R0",
		"  RET",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(6, asm.Label["Sub1"])
	assert.Equal(6, asm.Label["Also"])
	assert.Equal("Sub1", prog.Opcodes[0].LinkLabel)
	assert.Equal([]byte{
		0x82, 0x01, 0x06,
		0x50, 0x01,
		0x01,
		0x82, 0x00, 99,
		0x47, 0x00,
		0x11,
	}, prog.Binary())
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"HLT",
		"table: DB 1 2,3 'x'",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(1, asm.Label["table"])
	assert.Equal([]byte{0x01, 1, 2, 3, 'x'}, prog.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"DUP:\nDUP:\n", 2},
		{"HLT\nLDI R0\n", 2},
		{"LDI R0,1,2", 1},
		{"LDI R9,1", 1},
		{"LDI R0,256", 1},
		{"LDI R0,-129", 1},
		{"LDI R0,R1", 1},
		{"LDI R0,$(\"aaa\")", 1},
		{"LDI R0,$(more(\"aaa\"))", 1},
		{"LDI R0,$(0x10000000000000000)", 1},
		{"ADD R0,8", 1},
		{"PRN", 1},
		{"HLT R0", 1},
		{"NOP", 1},
		{"DB", 1},
		{"DB 300", 1},
		{"DB nothing", 1},
		{".equ", 1},
		{".equ A", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{".macro A B C\n.endm\nA 1\n", 3},
		{".macro A B\nLDI R0,B\n.endm\nA 1\nA 1000\n", 5},
		{".macro A B\n.macro C\n.endm\n.endm", 2},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3},
		{".macro A B\n.endm\n.endm\n", 3},
		{".macro A\nHLT\n", 2},
		{".macro\n", 1},
		{"HLT\nLDI R0,nowhere\nHLT\n", 2},
		{"1bad: HLT", 1},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssemblerErrKinds(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		prog string
		err  error
	}){
		{"LDI R9,1", ErrRegisterInvalid},
		{"LDI R0,256", ErrValueRange},
		{"LDI R0", ErrOpcodeArgs},
		{"NOP", ErrInstructionInvalid},
		{"A:\nA:", ErrLabelDuplicate},
		{".equ A", ErrEquateSyntax},
		{".macro A B\nLDI R7,B\n.endm\nA 999\n", ErrValueRange},
		{strings.Repeat("DB 0 0 0 0\n", 65), ErrProgramSize},
		{"LDI R0,'\n", ErrParseCharacter("'")},
		{"DB '\n", ErrParseCharacter("'")},
		{".macro M\nM\n.endm\nM\n", ErrMacroRecursion},
		{".macro A\nB\n.endm\n.macro B\nA\n.endm\nA\n", ErrMacroRecursion},
		{"LDI R0,end\n" + strings.Repeat("DB 0\n", 253) + "end:\n", ErrValueRange},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		assert.ErrorIs(err, entry.err, entry.prog)
	}

	_, err := asm.Parse(strings.NewReader("LDI R0,nowhere"))
	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("nowhere"), missing)
}

func TestAssemblerMacroRecursion(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(".macro M\nM\n.endm\nHLT\nM\n"))
	assert.ErrorIs(err, ErrMacroRecursion)

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(5, se.LineNo)

	var em *ErrMacro
	assert.True(errors.As(err, &em))
	assert.Equal("M", em.Macro)

	// Expanding the same macro more than once is not recursion.
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		".macro INNER rn",
		"PRN rn",
		".endm",
		".macro OUTER rn",
		"INNER rn",
		"INNER rn",
		".endm",
		"OUTER R0",
		"OUTER R1",
	}, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal([]byte{0x47, 0, 0x47, 0, 0x47, 1, 0x47, 1}, prog.Binary())
}

func TestAssemblerLabelRange(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// A label one past the end of memory cannot be loaded.
	program := "HLT\nLDI R0,end\n" + strings.Repeat("DB 0\n", 252) + "end:\n"
	_, err := asm.Parse(strings.NewReader(program))
	assert.ErrorIs(err, ErrValueRange)

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
	assert.Equal("LDI R0 end", se.Line)

	// The last byte of memory can.
	program = "LDI R0,last\n" + strings.Repeat("DB 0\n", 252) + "last: HLT\n"
	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(MEMORY_SIZE, prog.Size())
	assert.Equal(byte(0xff), prog.Binary()[2])
}
