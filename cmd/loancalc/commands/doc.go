// Package commands описывает CLI калькулятора кредита.
//
// Из --principal, --payment, --periods ровно один флаг не передается, и эта
// величина рассчитывается по двум другим, годовой ставке --interest и схеме
// --type (annuity или diff):
//
//	loancalc --type annuity --principal 1000000 --periods 60 --interest 10
//	loancalc --type annuity --principal 500000 --payment 23000 --interest 7.8
//	loancalc --type annuity --payment 8722 --periods 120 --interest 5.6
//	loancalc --type diff --principal 500000 --periods 8 --interest 7.8
//
// При любой ошибке во входных данных печатается "Incorrect parameters",
// код выхода 1; причина пишется в лог (stderr).
package commands
