package builtins

import (
	"math"

	"github.com/funvibe/lispcore/internal/value"
)

func numArgs(name string, args []value.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(value.Number)
		if !ok {
			return nil, arityErr(name, "numbers", len(args))
		}
		out[i] = n.Val
	}
	return out, nil
}

func dispatchArith(name string, args []value.Value) (value.Value, error) {
	nums, err := numArgs(name, args)
	if err != nil {
		return nil, err
	}
	switch name {
	case "+":
		sum := 0.0
		for _, n := range nums {
			sum += n
		}
		return value.Number{Val: sum}, nil
	case "-":
		if len(nums) == 0 {
			return nil, arityErr(name, "at least 1", 0)
		}
		if len(nums) == 1 {
			return value.Number{Val: -nums[0]}, nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc -= n
		}
		return value.Number{Val: acc}, nil
	case "*":
		acc := 1.0
		for _, n := range nums {
			acc *= n
		}
		return value.Number{Val: acc}, nil
	case "/":
		if len(nums) == 0 {
			return nil, arityErr(name, "at least 1", 0)
		}
		if len(nums) == 1 {
			return value.Number{Val: 1 / nums[0]}, nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc /= n
		}
		return value.Number{Val: acc}, nil
	case "mod":
		if len(nums) != 2 {
			return nil, arityErr(name, "2", len(nums))
		}
		return value.Number{Val: math.Mod(nums[0], nums[1])}, nil
	case "rem":
		if len(nums) != 2 {
			return nil, arityErr(name, "2", len(nums))
		}
		return value.Number{Val: math.Remainder(nums[0], nums[1])}, nil
	case "=":
		return value.Bool{Val: chainCompare(nums, func(a, b float64) bool { return a == b })}, nil
	case "<":
		return value.Bool{Val: chainCompare(nums, func(a, b float64) bool { return a < b })}, nil
	case ">":
		return value.Bool{Val: chainCompare(nums, func(a, b float64) bool { return a > b })}, nil
	case "<=":
		return value.Bool{Val: chainCompare(nums, func(a, b float64) bool { return a <= b })}, nil
	case ">=":
		return value.Bool{Val: chainCompare(nums, func(a, b float64) bool { return a >= b })}, nil
	case "inc":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: nums[0] + 1}, nil
	case "dec":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: nums[0] - 1}, nil
	case "abs":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: math.Abs(nums[0])}, nil
	case "round":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: math.Round(nums[0])}, nil
	case "floor":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: math.Floor(nums[0])}, nil
	case "ceil":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: math.Ceil(nums[0])}, nil
	case "sqrt":
		if len(nums) != 1 {
			return nil, arityErr(name, "1", len(nums))
		}
		return value.Number{Val: math.Sqrt(nums[0])}, nil
	case "pow":
		if len(nums) != 2 {
			return nil, arityErr(name, "2", len(nums))
		}
		return value.Number{Val: math.Pow(nums[0], nums[1])}, nil
	}
	return nil, arityErr(name, "?", len(nums))
}

func chainCompare(nums []float64, ok func(a, b float64) bool) bool {
	for i := 0; i+1 < len(nums); i++ {
		if !ok(nums[i], nums[i+1]) {
			return false
		}
	}
	return true
}
