// Package calc implements a four-function calculator with a percent operator.
//
// Expressions are infix, like "2+3*4". Multiplication, division, and percent
// bind tighter than addition and subtraction, and operators of equal
// precedence group left to right, so "10-2-3" is 5. The percent operator
// scales rather than taking a remainder: "50%200" is 50 percent of 200, or
// 100.
//
// Parsing converts an expression to postfix order once, so it can be
// evaluated any number of times with a Context. The scanner only understands
// numbers and operators. Anything else in the input, including spaces and
// brackets, is skipped. There is no unary minus.
//
// A Calculator ties evaluation together with a display and a memory register
// for front ends that work key by key.
//
package calc
