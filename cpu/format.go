package cpu

// Format is the operand shape of an instruction.
type Format int

const (
	FORMAT_NONE = Format(iota) // none
	FORMAT_R                   // rd, rt, rs
	FORMAT_I                   // rt, rs, imm
	FORMAT_BZ                  // rs, imm
	FORMAT_BEQ                 // rs, rt, imm
	FORMAT_JR                  // rs
	FORMAT_HALT                // (no operands)
)

var formatNames = [...]string{
	FORMAT_NONE: "none",
	FORMAT_R:    "R",
	FORMAT_I:    "I",
	FORMAT_BZ:   "BZ",
	FORMAT_BEQ:  "BEQ",
	FORMAT_JR:   "JR",
	FORMAT_HALT: "HALT",
}

func (ft Format) String() string {
	if ft < 0 || int(ft) >= len(formatNames) {
		return formatNames[FORMAT_NONE]
	}
	return formatNames[ft]
}

// Field identifies an operand slot of an instruction word.
type Field int

const (
	FIELD_RS  = Field(iota) // rs
	FIELD_RT                // rt
	FIELD_RD                // rd
	FIELD_IMM               // imm
)

// formatOperands lists, per format, the instruction fields in the order
// they are written in assembly text.
var formatOperands = [...][]Field{
	FORMAT_NONE: nil,
	FORMAT_R:    {FIELD_RD, FIELD_RT, FIELD_RS},
	FORMAT_I:    {FIELD_RT, FIELD_RS, FIELD_IMM},
	FORMAT_BZ:   {FIELD_RS, FIELD_IMM},
	FORMAT_BEQ:  {FIELD_RS, FIELD_RT, FIELD_IMM},
	FORMAT_JR:   {FIELD_RS},
	FORMAT_HALT: {},
}

// Operands returns the text order of operand fields for the format.
func (ft Format) Operands() []Field {
	if ft < 0 || int(ft) >= len(formatOperands) {
		return nil
	}
	return formatOperands[ft]
}

// Category groups opcodes by what they do, for instruction mix statistics.
type Category int

const (
	CATEGORY_ARITHMETIC = Category(iota) // arithmetic
	CATEGORY_LOGICAL                     // logical
	CATEGORY_MEMORY                      // memory
	CATEGORY_CONTROL                     // control
)

var categoryNames = [...]string{
	CATEGORY_ARITHMETIC: "arithmetic",
	CATEGORY_LOGICAL:    "logical",
	CATEGORY_MEMORY:     "memory",
	CATEGORY_CONTROL:    "control",
}

func (cat Category) String() string {
	return categoryNames[cat]
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CATEGORY_ARITHMETIC, CATEGORY_LOGICAL, CATEGORY_MEMORY, CATEGORY_CONTROL}
}

type catalogEntry struct {
	format   Format
	category Category
}

// catalog is indexed by opcode.
var catalog = [...]catalogEntry{
	OP_ADD:  {FORMAT_R, CATEGORY_ARITHMETIC},
	OP_ADDI: {FORMAT_I, CATEGORY_ARITHMETIC},
	OP_SUB:  {FORMAT_R, CATEGORY_ARITHMETIC},
	OP_SUBI: {FORMAT_I, CATEGORY_ARITHMETIC},
	OP_MUL:  {FORMAT_R, CATEGORY_ARITHMETIC},
	OP_MULI: {FORMAT_I, CATEGORY_ARITHMETIC},
	OP_OR:   {FORMAT_R, CATEGORY_LOGICAL},
	OP_ORI:  {FORMAT_I, CATEGORY_LOGICAL},
	OP_AND:  {FORMAT_R, CATEGORY_LOGICAL},
	OP_ANDI: {FORMAT_I, CATEGORY_LOGICAL},
	OP_XOR:  {FORMAT_R, CATEGORY_LOGICAL},
	OP_XORI: {FORMAT_I, CATEGORY_LOGICAL},
	OP_LDW:  {FORMAT_I, CATEGORY_MEMORY},
	OP_STW:  {FORMAT_I, CATEGORY_MEMORY},
	OP_BZ:   {FORMAT_BZ, CATEGORY_CONTROL},
	OP_BEQ:  {FORMAT_BEQ, CATEGORY_CONTROL},
	OP_JR:   {FORMAT_JR, CATEGORY_CONTROL},
	OP_HALT: {FORMAT_HALT, CATEGORY_CONTROL},
}

// Format returns the operand shape of the opcode, or FORMAT_NONE if
// the opcode is unknown.
func (op Opcode) Format() Format {
	if !op.Valid() {
		return FORMAT_NONE
	}
	return catalog[op].format
}

// Category returns the statistics group of the opcode.
func (op Opcode) Category() Category {
	if !op.Valid() {
		return CATEGORY_CONTROL
	}
	return catalog[op].category
}

var fieldNames = [...]string{
	FIELD_RS:  "rs",
	FIELD_RT:  "rt",
	FIELD_RD:  "rd",
	FIELD_IMM: "imm",
}

func (field Field) String() string {
	return fieldNames[field]
}
